package attendance

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

// ======================================================
// INPUT
// ======================================================

type FileExcuseInput struct {
	RecordID    uint
	Reason      string
	Description string
	Actor       uint
}

// ======================================================
// USE CASE
// ======================================================

type FileExcuse struct {
	store    domain.Store
	policies *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewFileExcuse(
	store domain.Store,
	policies *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *FileExcuse {
	return &FileExcuse{
		store:    store,
		policies: policies,
		auth:     auth,
	}
}

func (uc *FileExcuse) Execute(
	ctx context.Context,
	in FileExcuseInput,
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

	pol, err := uc.policies.Execute(ctx, rec.EventID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		if attempt > 0 {
			rec, err = uc.store.GetRecord(ctx, in.RecordID)
			if err != nil {
				return nil, httperr.ErrBusiness("record_not_found")
			}
		}

		old := rec.Status
		if err := domain.FileExcuse(rec, *pol, in.Reason, in.Description, in.Actor); err != nil {
			return nil, err
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			audit.ActionExcuseFiled,
			in.Actor,
			[]models.FieldChange{
				domain.Diff("status", old, rec.Status),
				domain.Diff("excuse_reason", "", in.Reason),
			},
			in.Description,
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
