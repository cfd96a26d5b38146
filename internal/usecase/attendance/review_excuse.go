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

type ReviewExcuseInput struct {
	RecordID uint
	Approved bool
	Note     string
	Reviewer uint
}

// ======================================================
// USE CASE
// ======================================================

type ReviewExcuse struct {
	store    domain.Store
	policies *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewReviewExcuse(
	store domain.Store,
	policies *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *ReviewExcuse {
	return &ReviewExcuse{
		store:    store,
		policies: policies,
		auth:     auth,
	}
}

func (uc *ReviewExcuse) Execute(
	ctx context.Context,
	in ReviewExcuseInput,
) (*models.Record, error) {

	rec, err := uc.store.GetRecord(ctx, in.RecordID)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	// revisão de justificativa exige manage_events no evento
	if err := uc.auth.Execute(ctx, in.Reviewer, models.EntityEvent, rec.EventID, memberdomain.PermManageEvents); err != nil {
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

		old := rec.ExcuseApprovalStatus
		oldStatus := rec.Status
		if err := domain.ReviewExcuse(rec, in.Approved, in.Reviewer, in.Note, now); err != nil {
			return nil, err
		}

		action := audit.ActionExcuseApproved
		if !in.Approved {
			action = audit.ActionExcuseRejected
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			action,
			in.Reviewer,
			[]models.FieldChange{
				domain.Diff("excuse_approval_status", old, rec.ExcuseApprovalStatus),
				domain.Diff("status", oldStatus, rec.Status),
			},
			in.Note,
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
