package attendance

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	"github.com/BruksfildServices01/attendance-tracker/internal/timezone"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

// ======================================================
// INPUT
// ======================================================

type OverrideInput struct {
	RecordID  uint
	NewStatus string
	Reason    string
	Actor     uint
}

// ======================================================
// USE CASE
// ======================================================

type ManualOverride struct {
	store    domain.Store
	policies *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewManualOverride(
	store domain.Store,
	policies *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *ManualOverride {
	return &ManualOverride{
		store:    store,
		policies: policies,
		auth:     auth,
	}
}

func (uc *ManualOverride) Execute(
	ctx context.Context,
	in OverrideInput,
) (*models.Record, error) {

	rec, err := uc.store.GetRecord(ctx, in.RecordID)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	if err := uc.auth.Execute(ctx, in.Actor, models.EntityEvent, rec.EventID, memberdomain.PermManageEvents); err != nil {
		return nil, err
	}

	pol, err := uc.policies.Execute(ctx, rec.EventID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(pol.Timezone)

	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		if attempt > 0 {
			rec, err = uc.store.GetRecord(ctx, in.RecordID)
			if err != nil {
				return nil, httperr.ErrBusiness("record_not_found")
			}
		}

		old := rec.Status
		if err := domain.Override(rec, domain.Status(in.NewStatus), in.Reason, in.Actor, now); err != nil {
			return nil, err
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			audit.ActionOverride,
			in.Actor,
			[]models.FieldChange{
				domain.Diff("status", old, rec.Status),
			},
			in.Reason,
		)

		err = uc.store.SaveRecord(ctx, rec, entry)
		if httperr.IsBusiness(err, "version_conflict") {
			continue
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}

	return nil, domain.ErrVersionConflict
}
