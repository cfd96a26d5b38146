package policy

import "github.com/BruksfildServices01/attendance-tracker/internal/models"

// ===============================
// Effective Policy
// ===============================

// Effective é a política totalmente resolvida de um evento, depois de
// aplicar o fallback evento → grupo → organização → default do sistema.
type Effective struct {
	Timezone string `json:"timezone"`

	AllowLateCheckIn       bool `json:"allow_late_check_in"`
	LateThresholdMinutes   int  `json:"late_threshold_minutes"`
	AutoMarkAbsentMinutes  int  `json:"auto_mark_absent_minutes"`
	AllowSelfCheckIn       bool `json:"allow_self_check_in"`
	RequireCheckOut        bool `json:"require_check_out"`
	AllowExcuses           bool `json:"allow_excuses"`
	ExcuseRequiresApproval bool `json:"excuse_requires_approval"`

	Privacy       models.PrivacySettings      `json:"privacy"`
	Notifications models.NotificationSettings `json:"notifications"`
}

// Limites aplicados na resolução: escopos superiores podem armazenar
// valores maiores, mas no evento o valor herdado é truncado.
const (
	MaxLateThresholdMinutes  = 24 * 60
	MaxAutoMarkAbsentMinutes = 7 * 24 * 60

	// Teto de escrita para organização e grupo; o limite do evento
	// (MaxLateThresholdMinutes) vale na escrita E na resolução.
	MaxStoredLateThresholdMinutes = 7 * 24 * 60
)

// Defaults retorna a política default do sistema (último fallback).
func Defaults() Effective {
	return Effective{
		Timezone: "GMT+00:00",

		AllowLateCheckIn:       true,
		LateThresholdMinutes:   15,
		AutoMarkAbsentMinutes:  0,
		AllowSelfCheckIn:       false,
		RequireCheckOut:        false,
		AllowExcuses:           true,
		ExcuseRequiresApproval: true,

		Privacy: models.PrivacySettings{
			IsPrivate:          false,
			AllowMemberInvites: false,
			AllowCustomPolicy:  false,
			PublicProfile:      true,
			ShowMemberList:     true,
		},
		Notifications: models.NotificationSettings{
			EmailEnabled: true,
			PushEnabled:  true,
			SMSEnabled:   false,
		},
	}
}
