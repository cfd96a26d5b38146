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

// Conflitos otimistas de versão são retentados internamente até este
// limite antes de subir para o caller.
const maxVersionRetries = 3

// ======================================================
// INPUT
// ======================================================

type CheckInInput struct {
	RecordID  uint
	Timestamp time.Time
	Method    string
	Actor     uint
}

// ======================================================
// USE CASE
// ======================================================

type RecordCheckIn struct {
	store    domain.Store
	policies *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewRecordCheckIn(
	store domain.Store,
	policies *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *RecordCheckIn {
	return &RecordCheckIn{
		store:    store,
		policies: policies,
		auth:     auth,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordCheckIn) Execute(
	ctx context.Context,
	in CheckInInput,
) (*models.Record, error) {

	// --------------------------------------------------
	// 1️⃣ Registro
	// --------------------------------------------------
	rec, err := uc.store.GetRecord(ctx, in.RecordID)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Autorização contra o evento alvo
	// --------------------------------------------------
	required := memberdomain.PermManageEvents
	if in.Actor == rec.UserID {
		required = memberdomain.PermView
	}
	if err := uc.auth.Execute(ctx, in.Actor, models.EntityEvent, rec.EventID, required); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Política efetiva do evento
	// --------------------------------------------------
	pol, err := uc.policies.Execute(ctx, rec.EventID)
	if err != nil {
		return nil, err
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = timezone.NowIn(pol.Timezone)
	}

	// --------------------------------------------------
	// 4️⃣ Transição + auditoria na mesma transação,
	//     com retry no conflito otimista de versão
	// --------------------------------------------------
	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		if attempt > 0 {
			rec, err = uc.store.GetRecord(ctx, in.RecordID)
			if err != nil {
				return nil, httperr.ErrBusiness("record_not_found")
			}
		}

		old := rec.Status
		if err := domain.CheckIn(rec, *pol, ts, in.Method, in.Actor); err != nil {
			return nil, err
		}

		entry := audit.Entry(
			audit.RecordScope(rec),
			models.EntityRecord,
			rec.ID,
			audit.ActionCheckIn,
			in.Actor,
			[]models.FieldChange{
				domain.Diff("status", old, rec.Status),
				domain.Diff("check_in_at", "", ts.Format(time.RFC3339)),
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
