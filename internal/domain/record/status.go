package record

import "github.com/BruksfildServices01/attendance-tracker/internal/httperr"

// ===============================
// Record Status
// ===============================

type Status string

const (
	StatusPending Status = "pending"
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusExcused Status = "excused"
	StatusPartial Status = "partial"
)

const (
	MethodManual      = "manual"
	MethodSelf        = "self"
	MethodQR          = "qr"
	MethodNFC         = "nfc"
	MethodGeolocation = "geolocation"
	MethodAdmin       = "admin"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const (
	ReasonSick      = "sick"
	ReasonPersonal  = "personal"
	ReasonWork      = "work"
	ReasonFamily    = "family"
	ReasonTravel    = "travel"
	ReasonTechnical = "technical"
	ReasonOther     = "other"
)

// ===============================
// Validations
// ===============================

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPresent, StatusLate, StatusAbsent, StatusExcused, StatusPartial:
		return true
	}
	return false
}

func IsValidExcuseReason(r string) bool {
	switch r {
	case ReasonSick, ReasonPersonal, ReasonWork, ReasonFamily, ReasonTravel, ReasonTechnical, ReasonOther:
		return true
	}
	return false
}

// CanFileExcuse define de quais estados uma justificativa pode partir.
func CanFileExcuse(current Status) error {
	if current != StatusPending && current != StatusAbsent {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReviewExcuse exige que o registro esteja justificado.
func CanReviewExcuse(current Status) error {
	if current != StatusExcused {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
