package handlers

import (
	"github.com/gin-gonic/gin"

	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httpresp"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

type PolicyHandler struct {
	resolver *ucpolicy.Resolver
	auth     *ucmembership.Authorizer
}

func NewPolicyHandler(
	resolver *ucpolicy.Resolver,
	auth *ucmembership.Authorizer,
) *PolicyHandler {
	return &PolicyHandler{
		resolver: resolver,
		auth:     auth,
	}
}

// GetForEvent devolve a política efetiva do evento, já com a herança
// org → group → event resolvida.
func (h *PolicyHandler) GetForEvent(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.auth.Execute(c.Request.Context(), actorID(c), models.EntityEvent, eventID, memberdomain.PermView); err != nil {
		writeBusinessError(c, err)
		return
	}

	eff, err := h.resolver.Execute(c.Request.Context(), eventID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, eff)
}
