package record

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/domain/policy"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transições puras sobre o Record: nenhuma função aqui persiste nada.
// Minutos sempre arredondam para o minuto mais próximo; resultados
// negativos truncam em zero.

func CheckIn(rec *models.Record, pol policy.Effective, ts time.Time, method string, actor uint) error {
	if rec.IsLocked {
		return httperr.ErrBusiness("record_locked")
	}
	if rec.Status != string(StatusPending) || rec.CheckInAt != nil {
		return httperr.ErrBusiness("invalid_state")
	}
	if method == MethodSelf && !pol.AllowSelfCheckIn {
		return httperr.ErrBusiness("self_check_in_not_allowed")
	}

	late := clampMinutes(ts.Sub(rec.EventStartTime))
	if !pol.AllowLateCheckIn && late > pol.LateThresholdMinutes {
		return httperr.ErrBusiness("check_in_window_closed")
	}

	in := ts
	rec.CheckInAt = &in
	rec.CheckInMethod = method
	rec.LateMinutes = late
	rec.LastModifiedBy = &actor

	if late > 0 {
		rec.Status = string(StatusLate)
	} else {
		rec.Status = string(StatusPresent)
	}

	return nil
}

func CheckOut(rec *models.Record, ts time.Time, method string, actor uint) error {
	if rec.IsLocked {
		return httperr.ErrBusiness("record_locked")
	}
	if rec.CheckInAt == nil || !ts.After(*rec.CheckInAt) {
		return httperr.ErrBusiness("check_out_before_check_in")
	}

	out := ts
	rec.CheckOutAt = &out
	rec.CheckOutMethod = method
	rec.ActualMinutes = clampMinutes(ts.Sub(*rec.CheckInAt))
	rec.LastModifiedBy = &actor

	if rec.EventEndTime != nil {
		rec.EarlyLeaveMinutes = clampMinutes(rec.EventEndTime.Sub(ts))
	}

	if rec.PlannedMinutes > 0 {
		pct := int(float64(rec.ActualMinutes)/float64(rec.PlannedMinutes)*100 + 0.5)
		if pct > 100 {
			pct = 100
		}
		rec.Percentage = pct

		if pct < 100 && (rec.Status == string(StatusPresent) || rec.Status == string(StatusLate)) {
			rec.Status = string(StatusPartial)
		}
	}

	return nil
}

// AutoAbsence marca pending → absent depois do prazo da política.
// Idempotente: reaplicar sobre um registro já resolvido é no-op.
func AutoAbsence(rec *models.Record, pol policy.Effective, asOf time.Time) bool {
	if rec.Status != string(StatusPending) || rec.CheckInAt != nil {
		return false
	}
	if pol.AutoMarkAbsentMinutes <= 0 {
		return false
	}

	deadline := rec.EventStartTime.Add(time.Duration(pol.AutoMarkAbsentMinutes) * time.Minute)
	if !asOf.After(deadline) {
		return false
	}

	rec.Status = string(StatusAbsent)
	rec.IsSystemGenerated = true
	return true
}

func FileExcuse(rec *models.Record, pol policy.Effective, reason, description string, actor uint) error {
	if rec.IsLocked {
		return httperr.ErrBusiness("record_locked")
	}
	if !pol.AllowExcuses {
		return httperr.ErrBusiness("excuses_not_allowed")
	}
	if !IsValidExcuseReason(reason) {
		return httperr.ErrBusiness("invalid_excuse_reason")
	}
	if err := CanFileExcuse(Status(rec.Status)); err != nil {
		return err
	}

	rec.Status = string(StatusExcused)
	rec.ExcuseReason = reason
	rec.ExcuseDescription = description
	rec.LastModifiedBy = &actor

	if pol.ExcuseRequiresApproval {
		rec.ExcuseApprovalStatus = ApprovalPending
	} else {
		rec.ExcuseApprovalStatus = ApprovalApproved
	}

	return nil
}

func ReviewExcuse(rec *models.Record, approved bool, reviewer uint, note string, now time.Time) error {
	if rec.IsLocked {
		return httperr.ErrBusiness("record_locked")
	}
	if err := CanReviewExcuse(Status(rec.Status)); err != nil {
		return err
	}

	old := rec.ExcuseApprovalStatus

	if approved {
		rec.ExcuseApprovalStatus = ApprovalApproved
	} else {
		rec.ExcuseApprovalStatus = ApprovalRejected
		rec.Status = string(StatusAbsent)
	}

	rec.ExcuseReviewedBy = &reviewer
	rec.ExcuseReviewedAt = &now
	rec.ExcuseReviewNote = note
	rec.LastModifiedBy = &reviewer

	appendHistory(rec, "excuse_approval_status", old, rec.ExcuseApprovalStatus, reviewer, note, now)
	return nil
}

func Override(rec *models.Record, newStatus Status, reason string, actor uint, now time.Time) error {
	if rec.IsLocked {
		return httperr.ErrBusiness("record_locked")
	}
	if !IsValidStatus(newStatus) {
		return httperr.ErrBusiness("invalid_status")
	}

	old := rec.Status
	rec.Status = string(newStatus)
	rec.IsManualEntry = true
	rec.LastModifiedBy = &actor

	appendHistory(rec, "status", old, rec.Status, actor, reason, now)
	return nil
}

func Lock(rec *models.Record, actor uint) {
	rec.IsLocked = true
	rec.LastModifiedBy = &actor
}

func Unlock(rec *models.Record, actor uint) {
	rec.IsLocked = false
	rec.LastModifiedBy = &actor
}

// ===============================
// Helpers
// ===============================

func appendHistory(rec *models.Record, field, oldValue, newValue string, actor uint, reason string, at time.Time) {
	rec.History = append(rec.History, models.Modification{
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
		Actor:    actor,
		Reason:   reason,
		At:       at,
	})
}

func clampMinutes(d time.Duration) int {
	m := int(d.Round(time.Minute) / time.Minute)
	if m < 0 {
		return 0
	}
	return m
}

// Diff produz o par old/new de um campo para o audit log.
func Diff(field string, oldValue, newValue any) models.FieldChange {
	return models.FieldChange{
		Field:    field,
		OldValue: fmt.Sprint(oldValue),
		NewValue: fmt.Sprint(newValue),
	}
}
