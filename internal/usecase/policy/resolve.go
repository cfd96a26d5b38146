package policy

import (
	"context"

	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/policy"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	"github.com/BruksfildServices01/attendance-tracker/internal/policycache"
)

// ======================================================
// USE CASE — RESOLVE EFFECTIVE POLICY
// ======================================================

type Resolver struct {
	store domain.Store
	cache *policycache.Cache
}

func NewResolver(
	store domain.Store,
	cache *policycache.Cache,
) *Resolver {
	return &Resolver{
		store: store,
		cache: cache,
	}
}

func (uc *Resolver) Execute(
	ctx context.Context,
	eventID uint,
) (*domain.Effective, error) {

	// --------------------------------------------------
	// 1️⃣ Evento (única falha possível da resolução)
	// --------------------------------------------------
	ev, err := uc.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, httperr.ErrBusiness("policy_not_resolvable")
	}

	// --------------------------------------------------
	// 2️⃣ Snapshot das três linhas (ausência não é erro)
	// --------------------------------------------------
	evSettings, err := uc.store.GetSettings(ctx, models.EntityEvent, ev.ID)
	if err != nil {
		return nil, err
	}

	grpSettings, err := uc.store.GetSettings(ctx, models.EntityGroup, ev.GroupID)
	if err != nil {
		return nil, err
	}

	orgSettings, err := uc.store.GetSettings(ctx, models.EntityOrganization, ev.OrganizationID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Cache pelo fingerprint do snapshot
	// --------------------------------------------------
	fp := domain.Fingerprint(evSettings, grpSettings, orgSettings)
	if eff, ok := uc.cache.Get(ctx, ev.ID, fp); ok {
		return eff, nil
	}

	// --------------------------------------------------
	// 4️⃣ Resolução campo a campo + cache
	// --------------------------------------------------
	eff := domain.Resolve(evSettings, grpSettings, orgSettings)
	uc.cache.Set(ctx, ev.ID, fp, eff)

	return &eff, nil
}
