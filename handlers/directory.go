// File: handlers/directory.go
package handlers

import (
	"net/http"

	"hopehealth/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FindAllSpecializationsHandler lists specializations, optionally filtered.
func (hb *HandlerBundle) FindAllSpecializationsHandler(c *gin.Context) {
	result, err := hb.Specialization.FindAllSpecializations(c.Request.Context(), c.Query("searchText"))
	if err != nil {
		getLogger(c).Error("specialization search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "specialization backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateSpecializationHandler adds a specialization to the directory.
func (hb *HandlerBundle) CreateSpecializationHandler(c *gin.Context) {
	var input struct {
		Specialization string `json:"specialization" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Specialization.CreateSpecialization(c.Request.Context(), input.Specialization); err != nil {
		getLogger(c).Error("specialization create failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create specialization"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"specialization.create", "specialization", "", "created "+input.Specialization)
	c.JSON(http.StatusCreated, gin.H{"message": "specialization created"})
}

// FindAllHospitalsHandler lists hospitals, optionally filtered.
func (hb *HandlerBundle) FindAllHospitalsHandler(c *gin.Context) {
	result, err := hb.Hospitals.FindAllHospitals(c.Request.Context(), c.Query("searchText"))
	if err != nil {
		getLogger(c).Error("hospital search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "hospital backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// SaveHospitalHandler adds a hospital to the directory.
func (hb *HandlerBundle) SaveHospitalHandler(c *gin.Context) {
	var input struct {
		HospitalName string `json:"hospitalName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Hospitals.SaveHospital(c.Request.Context(), input.HospitalName); err != nil {
		getLogger(c).Error("hospital save failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save hospital"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"hospital.create", "hospital", "", "created "+input.HospitalName)
	c.JSON(http.StatusCreated, gin.H{"message": "hospital saved"})
}

// CreateNewsHandler publishes an announcement.
func (hb *HandlerBundle) CreateNewsHandler(c *gin.Context) {
	var news models.News
	if err := c.ShouldBindJSON(&news); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.News.CreateNews(c.Request.Context(), news); err != nil {
		getLogger(c).Error("news create failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create news"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"news.create", "news", "", "published "+news.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "news created"})
}
