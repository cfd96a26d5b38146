package attendance

import (
	"context"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	"github.com/BruksfildServices01/attendance-tracker/internal/timezone"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

// ======================================================
// USE CASE — SWEEP AUTO-ABSENCES
// ======================================================

// Varredura disparada por request (sem scheduler no core): marca como
// absent os registros pendentes cujo prazo da política já passou.
// Idempotente por registro; conflitos de versão numa varredura são
// deixados para a próxima.

type SweepAbsences struct {
	store    domain.Store
	policies *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewSweepAbsences(
	store domain.Store,
	policies *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *SweepAbsences {
	return &SweepAbsences{
		store:    store,
		policies: policies,
		auth:     auth,
	}
}

func (uc *SweepAbsences) Execute(
	ctx context.Context,
	eventID uint,
	asOf time.Time,
	actor uint,
) (int, error) {

	if err := uc.auth.Execute(ctx, actor, models.EntityEvent, eventID, memberdomain.PermManageEvents); err != nil {
		return 0, err
	}

	pol, err := uc.policies.Execute(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if pol.AutoMarkAbsentMinutes <= 0 {
		return 0, nil
	}

	if asOf.IsZero() {
		asOf = timezone.NowIn(pol.Timezone)
	}

	pending, err := uc.store.ListPendingRecords(ctx, eventID, asOf)
	if err != nil {
		return 0, err
	}

	marked := 0
	for i := range pending {
		rec := &pending[i]

		if !domain.AutoAbsence(rec, *pol, asOf) {
			continue
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			audit.ActionAutoAbsent,
			actor,
			[]models.FieldChange{
				domain.Diff("status", string(domain.StatusPending), rec.Status),
			},
			"",
		)

		if err := uc.store.SaveRecord(ctx, rec, entry); err != nil {
			continue
		}
		marked++
	}

	return marked, nil
}
