package membership

import (
	"context"

	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ======================================================
// USE CASE — AUTHORIZE
// ======================================================

type Authorizer struct {
	store domain.Store
}

func NewAuthorizer(store domain.Store) *Authorizer {
	return &Authorizer{store: store}
}

// Execute monta o snapshot de memberships do usuário ao longo da
// hierarquia e delega a decisão pura ao domínio. Sem efeitos
// colaterais; seguro de chamar várias vezes na mesma request.
func (uc *Authorizer) Execute(
	ctx context.Context,
	userID uint,
	entityType string,
	entityID uint,
	required string,
) error {

	exact, err := uc.store.Find(ctx, userID, entityType, entityID)
	if err != nil {
		return err
	}

	in := domain.Input{Exact: exact}

	if entityType != models.EntityOrganization {
		parentType, parentID, orgID, err := uc.store.ParentOf(ctx, entityType, entityID)
		if err != nil {
			return err
		}

		in.Parent, err = uc.store.Find(ctx, userID, parentType, parentID)
		if err != nil {
			return err
		}

		if parentType != models.EntityOrganization {
			in.Org, err = uc.store.Find(ctx, userID, models.EntityOrganization, orgID)
			if err != nil {
				return err
			}
		}
	}

	if d := domain.Authorize(in, required); !d.Allowed {
		return httperr.ErrBusiness(d.Reason)
	}

	return nil
}
