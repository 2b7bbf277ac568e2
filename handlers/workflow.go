// File: handlers/workflow.go
package handlers

import (
	"errors"
	"net/http"

	"hopehealth/services/workflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// draftResponse is the shared success shape of the stage endpoints: the
// updated draft plus an optional notice when a fetch came back empty.
func draftResponse(c *gin.Context, draft *workflow.Draft, notice *workflow.Notice) {
	body := gin.H{"draft": draft}
	if notice != nil {
		body["notice"] = notice
	}
	c.JSON(http.StatusOK, body)
}

// workflowError maps the workflow error taxonomy onto HTTP statuses.
func workflowError(c *gin.Context, err error) {
	var missing *workflow.MissingFieldsError
	switch {
	case errors.Is(err, workflow.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking draft not found or expired"})
	case errors.Is(err, workflow.ErrStageOrder):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrDoctorNotOffered),
		errors.Is(err, workflow.ErrDateNotAvailable),
		errors.Is(err, workflow.ErrTimeNotAvailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "booking draft incomplete", "missing": missing.Fields})
	default:
		getLogger(c).Error("workflow stage failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend request failed"})
	}
}

// CreateDraftHandler opens a new booking draft.
func (hb *HandlerBundle) CreateDraftHandler(c *gin.Context) {
	draft, err := hb.Workflow.CreateDraft(c.Request.Context(), hb.Sessions.CurrentIdentity())
	if err != nil {
		getLogger(c).Error("failed to create booking draft", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking draft"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// GetDraftHandler returns the draft in its current state.
func (hb *HandlerBundle) GetDraftHandler(c *gin.Context) {
	draft, err := hb.Workflow.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectPatientHandler fills the patient stage.
func (hb *HandlerBundle) SelectPatientHandler(c *gin.Context) {
	var input struct {
		PatientID   string `json:"patientId" binding:"required"`
		PatientName string `json:"patientName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := hb.Workflow.SelectPatient(c.Request.Context(), c.Param("draftID"), input.PatientID, input.PatientName)
	if err != nil {
		workflowError(c, err)
		return
	}
	draftResponse(c, draft, nil)
}

// SelectSpecializationHandler fills the specialization stage and loads the
// matching doctors.
func (hb *HandlerBundle) SelectSpecializationHandler(c *gin.Context) {
	var input struct {
		Specialization string `json:"specialization" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, notice, err := hb.Workflow.SelectSpecialization(c.Request.Context(), c.Param("draftID"), input.Specialization)
	if err != nil {
		workflowError(c, err)
		return
	}
	draftResponse(c, draft, notice)
}

// SelectDoctorHandler fills the doctor stage and loads the open dates.
func (hb *HandlerBundle) SelectDoctorHandler(c *gin.Context) {
	var input struct {
		DoctorID string `json:"doctorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, notice, err := hb.Workflow.SelectDoctor(c.Request.Context(), c.Param("draftID"), input.DoctorID)
	if err != nil {
		workflowError(c, err)
		return
	}
	draftResponse(c, draft, notice)
}

// SelectDateHandler fills the date stage and loads the free slots.
func (hb *HandlerBundle) SelectDateHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, notice, err := hb.Workflow.SelectDate(c.Request.Context(), c.Param("draftID"), input.Date)
	if err != nil {
		workflowError(c, err)
		return
	}
	draftResponse(c, draft, notice)
}

// SelectTimeHandler fills the time stage.
func (hb *HandlerBundle) SelectTimeHandler(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := hb.Workflow.SelectTime(c.Request.Context(), c.Param("draftID"), input.Time)
	if err != nil {
		workflowError(c, err)
		return
	}
	draftResponse(c, draft, nil)
}

// SetReasonHandler fills the reason stage.
func (hb *HandlerBundle) SetReasonHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := hb.Workflow.SetReason(c.Request.Context(), c.Param("draftID"), input.Reason)
	if err != nil {
		workflowError(c, err)
		return
	}
	draftResponse(c, draft, nil)
}

// SubmitDraftHandler posts the completed draft to the booking backend.
func (hb *HandlerBundle) SubmitDraftHandler(c *gin.Context) {
	if err := hb.Workflow.Submit(c.Request.Context(), c.Param("draftID")); err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "booking created"})
}

// CancelDraftHandler discards the draft.
func (hb *HandlerBundle) CancelDraftHandler(c *gin.Context) {
	if err := hb.Workflow.Cancel(c.Request.Context(), c.Param("draftID")); err != nil {
		workflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking draft discarded"})
}
