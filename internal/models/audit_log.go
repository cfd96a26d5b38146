package models

import (
	"time"

	"gorm.io/datatypes"
)

type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Escopo denormalizado da hierarquia (0 quando não se aplica);
	// toda listagem filtra por uma destas colunas.
	OrganizationID uint `gorm:"index" json:"organization_id"`
	GroupID        uint `gorm:"index" json:"group_id"`
	EventID        uint `gorm:"index" json:"event_id"`

	EntityType string `gorm:"size:50;not null;index:idx_audit_entity" json:"entity_type"`
	EntityID   uint   `gorm:"not null;index:idx_audit_entity" json:"entity_id"`

	Action string `gorm:"size:50;not null;index" json:"action"`
	UserID *uint  `gorm:"index" json:"user_id"`

	Changes datatypes.JSONSlice[FieldChange] `json:"changes"`

	Severity    string `gorm:"size:20;default:'low';index" json:"severity"`
	Description string `gorm:"size:1000" json:"description"`

	Source    string `gorm:"size:20;default:'api'" json:"source"`
	RequestID string `gorm:"size:64" json:"request_id"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
