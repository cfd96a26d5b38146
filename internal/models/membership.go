package models

import (
	"time"

	"gorm.io/datatypes"
)

type Membership struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_membership_scope" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	EntityType string `gorm:"size:20;not null;uniqueIndex:idx_membership_scope" json:"entity_type"`
	EntityID   uint   `gorm:"not null;uniqueIndex:idx_membership_scope" json:"entity_id"`

	Role   string `gorm:"size:20;default:'member';index" json:"role"`
	Status string `gorm:"size:20;default:'active';index" json:"status"`

	Permissions datatypes.JSONSlice[string] `json:"permissions"`

	JoinedAt     time.Time  `json:"joined_at"`
	AddedBy      *uint      `json:"added_by"`
	InviteToken  string     `gorm:"size:64;index" json:"-"`
	InviteExpiry *time.Time `json:"invite_expiry"`
	LastActivity *time.Time `json:"last_activity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
