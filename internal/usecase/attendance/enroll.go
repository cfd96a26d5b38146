package attendance

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
)

// ======================================================
// INPUT
// ======================================================

type EnrollInput struct {
	EventID uint
	UserID  uint
	Actor   uint
}

// ======================================================
// USE CASE
// ======================================================

type Enroll struct {
	store domain.Store
	auth  *ucmembership.Authorizer
	audit *audit.Dispatcher
}

func NewEnroll(
	store domain.Store,
	auth *ucmembership.Authorizer,
	auditor *audit.Dispatcher,
) *Enroll {
	return &Enroll{
		store: store,
		auth:  auth,
		audit: auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Enroll) Execute(
	ctx context.Context,
	in EnrollInput,
) (*models.Record, error) {

	// --------------------------------------------------
	// 1️⃣ Evento
	// --------------------------------------------------
	ev, err := uc.store.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}
	if !ev.IsActive || ev.IsArchived {
		return nil, httperr.ErrBusiness("event_inactive")
	}

	// --------------------------------------------------
	// 2️⃣ Autorização
	// --------------------------------------------------
	required := memberdomain.PermManageEvents
	if in.Actor == in.UserID {
		required = memberdomain.PermView
	}
	if err := uc.auth.Execute(ctx, in.Actor, models.EntityEvent, ev.ID, required); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Unicidade (userId, eventId)
	// --------------------------------------------------
	if existing, err := uc.store.GetRecordByUserEvent(ctx, in.UserID, ev.ID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("already_enrolled")
	}

	// --------------------------------------------------
	// 4️⃣ Criação do registro (status centralizado)
	// --------------------------------------------------
	rec := &models.Record{
		UserID:         in.UserID,
		EventID:        ev.ID,
		GroupID:        ev.GroupID,
		OrganizationID: ev.OrganizationID,
		Status:         string(domain.InitialStatus()),
		PlannedMinutes: ev.PlannedMinutes(),
		EventStartTime: ev.StartTime,
		EventEndTime:   ev.EndTime,
		Version:        1,
		RecordedBy:     in.Actor,
		IsActive:       true,
	}

	if err := uc.store.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Entry(
		audit.RecordScope(rec),
		models.EntityRecord,
		rec.ID,
		audit.ActionEnrolled,
		in.Actor,
		nil,
		"",
	))

	return rec, nil
}
