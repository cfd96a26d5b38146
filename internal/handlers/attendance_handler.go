package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	memberdomain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/dto"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/httpresp"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucattendance "github.com/BruksfildServices01/attendance-tracker/internal/usecase/attendance"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
)

// ======================================================
// HANDLER
// ======================================================

type AttendanceHandler struct {
	db   *gorm.DB
	auth *ucmembership.Authorizer

	enrollUC   *ucattendance.Enroll
	checkInUC  *ucattendance.RecordCheckIn
	checkOutUC *ucattendance.RecordCheckOut
	excuseUC   *ucattendance.FileExcuse
	reviewUC   *ucattendance.ReviewExcuse
	overrideUC *ucattendance.ManualOverride
	lockUC     *ucattendance.SetLock
	sweepUC    *ucattendance.SweepAbsences
}

func NewAttendanceHandler(
	db *gorm.DB,
	auth *ucmembership.Authorizer,
	enrollUC *ucattendance.Enroll,
	checkInUC *ucattendance.RecordCheckIn,
	checkOutUC *ucattendance.RecordCheckOut,
	excuseUC *ucattendance.FileExcuse,
	reviewUC *ucattendance.ReviewExcuse,
	overrideUC *ucattendance.ManualOverride,
	lockUC *ucattendance.SetLock,
	sweepUC *ucattendance.SweepAbsences,
) *AttendanceHandler {
	return &AttendanceHandler{
		db:         db,
		auth:       auth,
		enrollUC:   enrollUC,
		checkInUC:  checkInUC,
		checkOutUC: checkOutUC,
		excuseUC:   excuseUC,
		reviewUC:   reviewUC,
		overrideUC: overrideUC,
		lockUC:     lockUC,
		sweepUC:    sweepUC,
	}
}

// --------- Requests ---------

type EnrollRequest struct {
	UserID uint `json:"user_id"`
}

type CheckRequest struct {
	Timestamp string `json:"timestamp"`
	Method    string `json:"method"`
}

type ExcuseRequest struct {
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

type ReviewExcuseRequest struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note"`
}

type OverrideRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type SweepRequest struct {
	AsOf string `json:"as_of"`
}

// --------- Handlers ---------

func (h *AttendanceHandler) Enroll(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actor := actorID(c)
	userID := req.UserID
	if userID == 0 {
		userID = actor
	}

	rec, err := h.enrollUC.Execute(c.Request.Context(), ucattendance.EnrollInput{
		EventID: eventID,
		UserID:  userID,
		Actor:   actor,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordView(rec))
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ts, ok := parseOptionalTime(req.Timestamp)
	if !ok {
		httperr.BadRequest(c, "invalid_timestamp", "Timestamp inválido (use RFC3339).")
		return
	}

	rec, err := h.checkInUC.Execute(c.Request.Context(), ucattendance.CheckInInput{
		RecordID:  recordID,
		Timestamp: ts,
		Method:    req.Method,
		Actor:     actorID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.RecordView(rec))
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ts, ok := parseOptionalTime(req.Timestamp)
	if !ok {
		httperr.BadRequest(c, "invalid_timestamp", "Timestamp inválido (use RFC3339).")
		return
	}

	rec, err := h.checkOutUC.Execute(c.Request.Context(), ucattendance.CheckOutInput{
		RecordID:  recordID,
		Timestamp: ts,
		Method:    req.Method,
		Actor:     actorID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.RecordView(rec))
}

func (h *AttendanceHandler) FileExcuse(c *gin.Context) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ExcuseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rec, err := h.excuseUC.Execute(c.Request.Context(), ucattendance.FileExcuseInput{
		RecordID:    recordID,
		Reason:      req.Reason,
		Description: req.Description,
		Actor:       actorID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.RecordView(rec))
}

func (h *AttendanceHandler) ReviewExcuse(c *gin.Context) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ReviewExcuseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rec, err := h.reviewUC.Execute(c.Request.Context(), ucattendance.ReviewExcuseInput{
		RecordID: recordID,
		Approved: req.Approved,
		Note:     req.Note,
		Reviewer: actorID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.RecordView(rec))
}

func (h *AttendanceHandler) Override(c *gin.Context) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rec, err := h.overrideUC.Execute(c.Request.Context(), ucattendance.OverrideInput{
		RecordID:  recordID,
		NewStatus: req.Status,
		Reason:    req.Reason,
		Actor:     actorID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.RecordView(rec))
}

func (h *AttendanceHandler) Lock(c *gin.Context) {
	h.setLock(c, true)
}

func (h *AttendanceHandler) Unlock(c *gin.Context) {
	h.setLock(c, false)
}

func (h *AttendanceHandler) setLock(c *gin.Context, locked bool) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	rec, err := h.lockUC.Execute(c.Request.Context(), recordID, locked, actorID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, dto.RecordView(rec))
}

func (h *AttendanceHandler) SweepAbsences(c *gin.Context) {
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	asOf, ok := parseOptionalTime(req.AsOf)
	if !ok {
		httperr.BadRequest(c, "invalid_timestamp", "Timestamp inválido (use RFC3339).")
		return
	}

	marked, err := h.sweepUC.Execute(c.Request.Context(), eventID, asOf, actorID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked_absent": marked})
}

func (h *AttendanceHandler) GetRecord(c *gin.Context) {
	recordID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rec models.Record
	if err := h.db.First(&rec, recordID).Error; err != nil {
		httperr.NotFound(c, "record_not_found", "Registro não encontrado.")
		return
	}

	// só o dono do registro ou quem gerencia o evento pode ver
	actor := actorID(c)
	if rec.UserID != actor {
		err := h.auth.Execute(c.Request.Context(), actor, models.EntityEvent, rec.EventID, memberdomain.PermManageEvents)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	httpresp.OK(c, dto.RecordView(&rec))
}

// --------- Param helpers ---------

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
