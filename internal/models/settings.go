package models

import "time"

// ===============================
// Entity hierarchy
// ===============================

const (
	EntityOrganization = "organization"
	EntityGroup        = "group"
	EntityEvent        = "event"
	EntityRecord       = "record"
	EntityMembership   = "membership"
	EntitySettings     = "settings"
)

// ===============================
// Settings
// ===============================

// Campos ponteiro nil significam "herdar do escopo pai".

type PrivacySettings struct {
	IsPrivate          bool `json:"is_private"`
	AllowMemberInvites bool `json:"allow_member_invites"`
	AllowCustomPolicy  bool `json:"allow_custom_policy"`
	PublicProfile      bool `json:"public_profile"`
	ShowMemberList     bool `json:"show_member_list"`
}

type NotificationSettings struct {
	EmailEnabled bool `json:"email_enabled"`
	PushEnabled  bool `json:"push_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`
}

type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EntityType string `gorm:"size:20;not null;uniqueIndex:idx_settings_entity" json:"entity_type"`
	EntityID   uint   `gorm:"not null;uniqueIndex:idx_settings_entity" json:"entity_id"`

	Timezone *string `gorm:"size:10" json:"timezone"`

	AllowLateCheckIn       *bool `json:"allow_late_check_in"`
	LateThresholdMinutes   *int  `json:"late_threshold_minutes"`
	AutoMarkAbsentMinutes  *int  `json:"auto_mark_absent_minutes"`
	AllowSelfCheckIn       *bool `json:"allow_self_check_in"`
	RequireCheckOut        *bool `json:"require_check_out"`
	AllowExcuses           *bool `json:"allow_excuses"`
	ExcuseRequiresApproval *bool `json:"excuse_requires_approval"`

	Privacy       *PrivacySettings      `gorm:"serializer:json" json:"privacy"`
	Notifications *NotificationSettings `gorm:"serializer:json" json:"notifications"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
