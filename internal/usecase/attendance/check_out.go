package attendance

import (
	"context"
	"time"

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

type CheckOutInput struct {
	RecordID  uint
	Timestamp time.Time
	Method    string
	Actor     uint
}

// ======================================================
// USE CASE
// ======================================================

type RecordCheckOut struct {
	store    domain.Store
	policies *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewRecordCheckOut(
	store domain.Store,
	policies *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *RecordCheckOut {
	return &RecordCheckOut{
		store:    store,
		policies: policies,
		auth:     auth,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordCheckOut) Execute(
	ctx context.Context,
	in CheckOutInput,
) (*models.Record, error) {

	rec, err := uc.store.GetRecord(ctx, in.RecordID)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	required := memberdomain.PermManageEvents
	if in.Actor == rec.UserID {
		required = memberdomain.PermView
	}
	if err := uc.auth.Execute(ctx, in.Actor, models.EntityEvent, rec.EventID, required); err != nil {
		return nil, err
	}

	// checkout é sempre permitido quando existe check-in; a política só
	// entra para resolver o timezone do timestamp default
	pol, err := uc.policies.Execute(ctx, rec.EventID)
	if err != nil {
		return nil, err
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = timezone.NowIn(pol.Timezone)
	}

	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		if attempt > 0 {
			rec, err = uc.store.GetRecord(ctx, in.RecordID)
			if err != nil {
				return nil, httperr.ErrBusiness("record_not_found")
			}
		}

		old := rec.Status
		if err := domain.CheckOut(rec, ts, in.Method, in.Actor); err != nil {
			return nil, err
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			audit.ActionCheckOut,
			in.Actor,
			[]models.FieldChange{
				domain.Diff("status", old, rec.Status),
				domain.Diff("check_out_at", "", ts.Format(time.RFC3339)),
			},
			"",
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
