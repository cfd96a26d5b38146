package models

import (
	"time"

	"gorm.io/datatypes"
)

// ===============================
// Record — resultado de presença por (userId, eventId)
// ===============================

type Modification struct {
	Field    string    `json:"field"`
	OldValue string    `json:"old_value"`
	NewValue string    `json:"new_value"`
	Actor    uint      `json:"actor"`
	Reason   string    `json:"reason"`
	At       time.Time `json:"at"`
}

type Record struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_record_user_event" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_record_user_event" json:"event_id"`
	Event   Event `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"event"`

	GroupID        uint `gorm:"index;not null" json:"group_id"`
	OrganizationID uint `gorm:"index;not null" json:"organization_id"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CheckInAt      *time.Time `json:"check_in_at"`
	CheckInMethod  string     `gorm:"size:20" json:"check_in_method"`
	CheckOutAt     *time.Time `json:"check_out_at"`
	CheckOutMethod string     `gorm:"size:20" json:"check_out_method"`

	PlannedMinutes int `json:"planned_minutes"`
	ActualMinutes  int `json:"actual_minutes"`

	Percentage        int `gorm:"default:0" json:"percentage"`
	LateMinutes       int `gorm:"default:0" json:"late_minutes"`
	EarlyLeaveMinutes int `gorm:"default:0" json:"early_leave_minutes"`

	ExcuseReason         string     `gorm:"size:20" json:"excuse_reason"`
	ExcuseDescription    string     `gorm:"size:500" json:"excuse_description"`
	ExcuseApprovalStatus string     `gorm:"size:20" json:"excuse_approval_status"`
	ExcuseReviewedBy     *uint      `json:"excuse_reviewed_by"`
	ExcuseReviewedAt     *time.Time `json:"excuse_reviewed_at"`
	ExcuseReviewNote     string     `gorm:"size:500" json:"excuse_review_note"`

	History datatypes.JSONSlice[Modification] `json:"history"`

	IsManualEntry     bool `gorm:"default:false" json:"is_manual_entry"`
	IsSystemGenerated bool `gorm:"default:false" json:"is_system_generated"`
	HasDiscrepancy    bool `gorm:"default:false" json:"has_discrepancy"`
	RequiresReview    bool `gorm:"default:false" json:"requires_review"`
	IsLocked          bool `gorm:"default:false" json:"is_locked"`

	EventStartTime time.Time  `json:"event_start_time"`
	EventEndTime   *time.Time `json:"event_end_time"`
	Version        int        `gorm:"default:1" json:"version"`

	RecordedBy     uint  `json:"recorded_by"`
	LastModifiedBy *uint `json:"last_modified_by"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
