package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/policy"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/httpresp"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	"github.com/BruksfildServices01/attendance-tracker/internal/timezone"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
)

// ======================================================
// HANDLER — SETTINGS POR ESCOPO
// ======================================================

type SettingsHandler struct {
	store   domain.Store
	members memberdomain.Store
	auth    *ucmembership.Authorizer
	auditor *audit.Dispatcher
}

func NewSettingsHandler(
	store domain.Store,
	members memberdomain.Store,
	auth *ucmembership.Authorizer,
	auditor *audit.Dispatcher,
) *SettingsHandler {
	return &SettingsHandler{
		store:   store,
		members: members,
		auth:    auth,
		auditor: auditor,
	}
}

// --------- Request ---------

type PutSettingsRequest struct {
	Timezone *string `json:"timezone"`

	AllowLateCheckIn       *bool `json:"allow_late_check_in"`
	LateThresholdMinutes   *int  `json:"late_threshold_minutes"`
	AutoMarkAbsentMinutes  *int  `json:"auto_mark_absent_minutes"`
	AllowSelfCheckIn       *bool `json:"allow_self_check_in"`
	RequireCheckOut        *bool `json:"require_check_out"`
	AllowExcuses           *bool `json:"allow_excuses"`
	ExcuseRequiresApproval *bool `json:"excuse_requires_approval"`

	Privacy       *models.PrivacySettings      `json:"privacy"`
	Notifications *models.NotificationSettings `json:"notifications"`
}

// --------- Handlers ---------

func (h *SettingsHandler) Get(c *gin.Context) {
	entityType, entityID, ok := h.scope(c)
	if !ok {
		return
	}

	if err := h.auth.Execute(c.Request.Context(), actorID(c), entityType, entityID, memberdomain.PermView); err != nil {
		writeBusinessError(c, err)
		return
	}

	set, err := h.store.GetSettings(c.Request.Context(), entityType, entityID)
	if err != nil {
		httperr.Internal(c, "settings_lookup_failed", "Erro ao buscar configurações.")
		return
	}
	if set == nil {
		// escopo sem linha própria: tudo herdado
		set = &models.Settings{EntityType: entityType, EntityID: entityID}
	}

	httpresp.OK(c, set)
}

func (h *SettingsHandler) Put(c *gin.Context) {
	entityType, entityID, ok := h.scope(c)
	if !ok {
		return
	}

	actor := actorID(c)
	if err := h.auth.Execute(c.Request.Context(), actor, entityType, entityID, memberdomain.PermManageSettings); err != nil {
		writeBusinessError(c, err)
		return
	}

	var req PutSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, ok := validateSettingsWrite(entityType, &req); !ok {
		httperr.BadRequest(c, code, "Configuração fora dos limites do escopo.")
		return
	}

	set, err := h.upsert(c.Request.Context(), entityType, entityID, &req)
	if err != nil {
		httperr.Internal(c, "settings_save_failed", "Erro ao salvar configurações.")
		return
	}

	scope, err := ucmembership.ScopeOf(c.Request.Context(), h.members, entityType, entityID)
	if err != nil {
		httperr.Internal(c, "settings_save_failed", "Erro ao salvar configurações.")
		return
	}

	h.auditor.Dispatch(audit.Entry(
		scope,
		models.EntitySettings,
		set.ID,
		audit.ActionSettingsUpdated,
		actor,
		nil,
		entityType,
	))

	httpresp.OK(c, set)
}

// validateSettingsWrite aplica os limites de escrita por escopo:
// organização e grupo aceitam até 7 dias de limite de atraso; no
// evento o teto é 24h, igual ao aplicado na resolução.
func validateSettingsWrite(entityType string, req *PutSettingsRequest) (string, bool) {
	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		return "invalid_timezone", false
	}

	maxLate := domain.MaxStoredLateThresholdMinutes
	if entityType == models.EntityEvent {
		maxLate = domain.MaxLateThresholdMinutes
	}
	if req.LateThresholdMinutes != nil &&
		(*req.LateThresholdMinutes < 0 || *req.LateThresholdMinutes > maxLate) {
		return "invalid_threshold", false
	}

	if req.AutoMarkAbsentMinutes != nil &&
		(*req.AutoMarkAbsentMinutes < 0 || *req.AutoMarkAbsentMinutes > domain.MaxAutoMarkAbsentMinutes) {
		return "invalid_threshold", false
	}

	return "", true
}

// upsert trata o PUT como substituição completa: campo omitido no
// corpo vira nil na linha e o valor passa a ser herdado do escopo pai.
func (h *SettingsHandler) upsert(
	ctx context.Context,
	entityType string,
	entityID uint,
	req *PutSettingsRequest,
) (*models.Settings, error) {

	set, err := h.store.GetSettings(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		set = &models.Settings{EntityType: entityType, EntityID: entityID}
	}

	set.Timezone = req.Timezone
	set.AllowLateCheckIn = req.AllowLateCheckIn
	set.LateThresholdMinutes = req.LateThresholdMinutes
	set.AutoMarkAbsentMinutes = req.AutoMarkAbsentMinutes
	set.AllowSelfCheckIn = req.AllowSelfCheckIn
	set.RequireCheckOut = req.RequireCheckOut
	set.AllowExcuses = req.AllowExcuses
	set.ExcuseRequiresApproval = req.ExcuseRequiresApproval
	set.Privacy = req.Privacy
	set.Notifications = req.Notifications

	if err := h.store.PutSettings(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// --------- Scope ---------

var validScopes = map[string]bool{
	models.EntityOrganization: true,
	models.EntityGroup:        true,
	models.EntityEvent:        true,
}

func (h *SettingsHandler) scope(c *gin.Context) (string, uint, bool) {
	entityType := c.Param("entityType")
	if !validScopes[entityType] {
		httperr.BadRequest(c, "invalid_entity_type", "Escopo deve ser organization, group ou event.")
		return "", 0, false
	}

	entityID, ok := paramID(c, "entityId")
	if !ok {
		return "", 0, false
	}

	return entityType, entityID, true
}
