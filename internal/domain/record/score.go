package record

import "github.com/BruksfildServices01/attendance-tracker/internal/models"

// Score calcula a nota de presença sob demanda; valor derivado, nunca
// armazenado. O segundo retorno é false enquanto o registro ainda está
// pendente (não pontuável).
func Score(rec *models.Record) (int, bool) {
	var score int

	switch Status(rec.Status) {
	case StatusPending:
		return 0, false
	case StatusPresent:
		score = 100
	case StatusLate:
		score = 100 - 2*rec.LateMinutes
		if score < 50 {
			score = 50
		}
	case StatusPartial:
		score = rec.Percentage
	case StatusExcused:
		if rec.ExcuseApprovalStatus == ApprovalApproved {
			score = 80
		} else {
			score = 0
		}
	default: // absent
		score = 0
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, true
}
