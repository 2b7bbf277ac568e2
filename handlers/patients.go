// File: handlers/patients.go
package handlers

import (
	"net/http"

	"hopehealth/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FindAllPatientsHandler proxies the paged patient search.
func (hb *HandlerBundle) FindAllPatientsHandler(c *gin.Context) {
	page, size := pageParams(c)
	result, err := hb.Patients.FindAllPatients(c.Request.Context(), c.Query("searchText"), page, size)
	if err != nil {
		getLogger(c).Error("patient search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "patient backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RegisterPatientHandler creates a patient account through the user backend.
func (hb *HandlerBundle) RegisterPatientHandler(c *gin.Context) {
	var reg models.PatientRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Users.RegisterPatient(c.Request.Context(), reg); err != nil {
		getLogger(c).Error("patient registration failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to register patient"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"patient.register", "patient", "", "registered "+reg.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "patient registered"})
}

// MonthlyPatientStatsHandler returns registrations grouped by month for the
// dashboard chart.
func (hb *HandlerBundle) MonthlyPatientStatsHandler(c *gin.Context) {
	months := intQuery(c, "months", 12)
	result, err := hb.Patients.FindPatientsByMonth(c.Request.Context(), months)
	if err != nil {
		getLogger(c).Error("monthly patient stats failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "patient backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DailyPatientStatsHandler returns registrations grouped by date.
func (hb *HandlerBundle) DailyPatientStatsHandler(c *gin.Context) {
	result, err := hb.Patients.FindPatientsByDate(c.Request.Context())
	if err != nil {
		getLogger(c).Error("daily patient stats failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "patient backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}
