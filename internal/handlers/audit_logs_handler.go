package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db   *gorm.DB
	auth *ucmembership.Authorizer
}

func NewAuditLogsHandler(db *gorm.DB, auth *ucmembership.Authorizer) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, auth: auth}
}

func (h *AuditLogsHandler) List(c *gin.Context) {

	// --------------------------------------------------
	// Escopo obrigatório + autorização (view_reports)
	// --------------------------------------------------

	scopeType := c.Query("scope_type")
	if !validScopes[scopeType] {
		httperr.BadRequest(c, "invalid_scope", "scope_type deve ser organization, group ou event.")
		return
	}

	scopeID, err := strconv.ParseUint(c.Query("scope_id"), 10, 32)
	if err != nil || scopeID == 0 {
		httperr.BadRequest(c, "invalid_scope", "scope_id inválido.")
		return
	}

	if err := h.auth.Execute(c.Request.Context(), actorID(c), scopeType, uint(scopeID), memberdomain.PermViewReports); err != nil {
		writeBusinessError(c, err)
		return
	}

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	action := c.Query("action")
	entityType := c.Query("entity_type")
	severity := c.Query("severity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// A autorização valeu para o escopo informado; a consulta só pode
	// devolver entradas desse mesmo escopo.
	q := h.db.Model(&models.AuditLog{}).
		Where(auditScopeColumn(scopeType)+" = ?", uint(scopeID))

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entityType != "" {
		q = q.Where("entity_type = ?", entityType)
	}

	if severity != "" {
		q = q.Where("severity = ?", severity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

// auditScopeColumn mapeia o scope_type para a coluna denormalizada
// correspondente em audit_logs.
func auditScopeColumn(scopeType string) string {
	switch scopeType {
	case models.EntityGroup:
		return "group_id"
	case models.EntityEvent:
		return "event_id"
	default:
		return "organization_id"
	}
}
