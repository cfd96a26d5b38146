package attendance

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
)

// ======================================================
// USE CASE — LOCK / UNLOCK
// ======================================================

type SetLock struct {
	store domain.Store
	auth  *ucmembership.Authorizer
}

func NewSetLock(
	store domain.Store,
	auth *ucmembership.Authorizer,
) *SetLock {
	return &SetLock{
		store: store,
		auth:  auth,
	}
}

func (uc *SetLock) Execute(
	ctx context.Context,
	recordID uint,
	locked bool,
	actor uint,
) (*models.Record, error) {

	rec, err := uc.store.GetRecord(ctx, recordID)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	if err := uc.auth.Execute(ctx, actor, models.EntityEvent, rec.EventID, memberdomain.PermManageEvents); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		if attempt > 0 {
			rec, err = uc.store.GetRecord(ctx, recordID)
			if err != nil {
				return nil, httperr.ErrBusiness("record_not_found")
			}
		}

		old := rec.IsLocked
		if old == locked {
			return rec, nil
		}

		action := audit.ActionLock
		if locked {
			domain.Lock(rec, actor)
		} else {
			domain.Unlock(rec, actor)
			action = audit.ActionUnlock
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			action,
			actor,
			[]models.FieldChange{
				domain.Diff("is_locked", strconv.FormatBool(old), strconv.FormatBool(locked)),
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
