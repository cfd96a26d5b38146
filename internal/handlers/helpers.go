package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/middleware"
)

func actorID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// parseOptionalTime aceita timestamp RFC3339 ou vazio; vazio vira o
// zero value e o use case resolve "agora" no fuso da política.
func parseOptionalTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// --------------------------------------------------
// Mapeamento BusinessError → status HTTP
// --------------------------------------------------

var notFoundCodes = map[string]bool{
	"record_not_found":      true,
	"event_not_found":       true,
	"membership_not_found":  true,
	"invite_not_found":      true,
	"policy_not_resolvable": true,
}

var forbiddenCodes = map[string]bool{
	"no_membership":           true,
	"membership_suspended":    true,
	"insufficient_role":       true,
	"insufficient_permission": true,
}

var conflictCodes = map[string]bool{
	"version_conflict":          true,
	"already_enrolled":          true,
	"membership_already_exists": true,
}

func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !httperr.AsBusiness(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch {
	case notFoundCodes[be.Code]:
		httperr.NotFound(c, be.Code, "Recurso não encontrado.")
	case forbiddenCodes[be.Code]:
		httperr.Write(c, http.StatusForbidden, be.Code, "Acesso negado.")
	case conflictCodes[be.Code]:
		httperr.Write(c, http.StatusConflict, be.Code, "Conflito de estado.")
	default:
		httperr.BadRequest(c, be.Code, "Operação rejeitada.")
	}
}
