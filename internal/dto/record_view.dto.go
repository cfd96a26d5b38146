package dto

import (
	"time"

	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// RecordViewDTO é a projeção de Record devolvida pela API; o score é
// derivado na hora, nunca lido do banco.
type RecordViewDTO struct {
	ID             uint `json:"id"`
	UserID         uint `json:"user_id"`
	EventID        uint `json:"event_id"`
	GroupID        uint `json:"group_id"`
	OrganizationID uint `json:"organization_id"`

	Status string `json:"status"`

	CheckInAt  *time.Time `json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at"`

	PlannedMinutes    int `json:"planned_minutes"`
	ActualMinutes     int `json:"actual_minutes"`
	Percentage        int `json:"percentage"`
	LateMinutes       int `json:"late_minutes"`
	EarlyLeaveMinutes int `json:"early_leave_minutes"`

	ExcuseReason         string `json:"excuse_reason,omitempty"`
	ExcuseApprovalStatus string `json:"excuse_approval_status,omitempty"`

	IsManualEntry bool `json:"is_manual_entry"`
	IsLocked      bool `json:"is_locked"`

	Score    *int `json:"score"`
	Scorable bool `json:"scorable"`

	Version int `json:"version"`
}

func RecordView(rec *models.Record) RecordViewDTO {
	view := RecordViewDTO{
		ID:             rec.ID,
		UserID:         rec.UserID,
		EventID:        rec.EventID,
		GroupID:        rec.GroupID,
		OrganizationID: rec.OrganizationID,

		Status: rec.Status,

		CheckInAt:  rec.CheckInAt,
		CheckOutAt: rec.CheckOutAt,

		PlannedMinutes:    rec.PlannedMinutes,
		ActualMinutes:     rec.ActualMinutes,
		Percentage:        rec.Percentage,
		LateMinutes:       rec.LateMinutes,
		EarlyLeaveMinutes: rec.EarlyLeaveMinutes,

		ExcuseReason:         rec.ExcuseReason,
		ExcuseApprovalStatus: rec.ExcuseApprovalStatus,

		IsManualEntry: rec.IsManualEntry,
		IsLocked:      rec.IsLocked,

		Version: rec.Version,
	}

	if score, ok := domain.Score(rec); ok {
		view.Score = &score
		view.Scorable = true
	}

	return view
}
