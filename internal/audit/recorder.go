package audit

import (
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ===============================
// Audit Recorder
// ===============================

// Ações do engine de presença. A entrada de auditoria de uma mutação é
// persistida na mesma transação da mutação (ver Store.SaveRecord); o
// recorder aqui só monta a entrada e deriva a severidade.

const (
	ActionCheckIn        = "record_check_in"
	ActionCheckOut       = "record_check_out"
	ActionAutoAbsent     = "record_auto_absent"
	ActionExcuseFiled    = "excuse_filed"
	ActionExcuseApproved = "excuse_approved"
	ActionExcuseRejected = "excuse_rejected"
	ActionOverride       = "record_overridden"
	ActionLock           = "record_locked"
	ActionUnlock         = "record_unlocked"

	ActionSettingsUpdated = "settings_updated"
	ActionMemberInvited   = "membership_invited"
	ActionMemberAccepted  = "membership_accepted"
	ActionMemberStatusSet = "membership_status_changed"
	ActionEnrolled        = "record_enrolled"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityFor deriva a severidade mecanicamente da ação.
func SeverityFor(action string) string {
	switch action {
	case ActionOverride, ActionExcuseRejected:
		return SeverityHigh
	case ActionLock, ActionUnlock:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Scope identifica onde na hierarquia a entrada aconteceu. Os IDs
// ficam denormalizados no AuditLog para que a listagem filtre por
// organização, grupo ou evento sem joins.
type Scope struct {
	OrganizationID uint
	GroupID        uint
	EventID        uint
}

// RecordScope deriva o escopo a partir de um registro de presença.
func RecordScope(rec *models.Record) Scope {
	return Scope{
		OrganizationID: rec.OrganizationID,
		GroupID:        rec.GroupID,
		EventID:        rec.EventID,
	}
}

// Entry monta uma entrada de auditoria pronta para append.
func Entry(
	scope Scope,
	entityType string,
	entityID uint,
	action string,
	actor uint,
	changes []models.FieldChange,
	description string,
) *models.AuditLog {

	userID := actor
	return &models.AuditLog{
		OrganizationID: scope.OrganizationID,
		GroupID:        scope.GroupID,
		EventID:        scope.EventID,
		EntityType:     entityType,
		EntityID:       entityID,
		Action:         action,
		UserID:         &userID,
		Changes:        changes,
		Severity:       SeverityFor(action),
		Description:    description,
		Source:         "api",
	}
}
