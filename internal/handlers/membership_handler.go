package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/httpresp"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
)

// ======================================================
// HANDLER
// ======================================================

type MembershipHandler struct {
	inviteUC    *ucmembership.InviteMember
	acceptUC    *ucmembership.AcceptInvite
	setStatusUC *ucmembership.SetStatus
}

func NewMembershipHandler(
	inviteUC *ucmembership.InviteMember,
	acceptUC *ucmembership.AcceptInvite,
	setStatusUC *ucmembership.SetStatus,
) *MembershipHandler {
	return &MembershipHandler{
		inviteUC:    inviteUC,
		acceptUC:    acceptUC,
		setStatusUC: setStatusUC,
	}
}

// --------- Requests ---------

type InviteRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   uint   `json:"entity_id" binding:"required"`
	UserID     uint   `json:"user_id" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *MembershipHandler) Invite(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	m, err := h.inviteUC.Execute(c.Request.Context(), ucmembership.InviteMemberInput{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		UserID:     req.UserID,
		Role:       req.Role,
		Actor:      actorID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"membership":   m,
		"invite_token": m.InviteToken,
	})
}

func (h *MembershipHandler) Accept(c *gin.Context) {
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	m, err := h.acceptUC.Execute(c.Request.Context(), req.Token, actorID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, m)
}

func (h *MembershipHandler) SetStatus(c *gin.Context) {
	membershipID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	m, err := h.setStatusUC.Execute(c.Request.Context(), membershipID, req.Status, actorID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, m)
}
