// File: handlers/doctors.go
package handlers

import (
	"net/http"

	"hopehealth/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FindAllDoctorsHandler proxies the paged doctor search.
func (hb *HandlerBundle) FindAllDoctorsHandler(c *gin.Context) {
	page, size := pageParams(c)
	result, err := hb.Doctors.FindAllDoctors(c.Request.Context(), c.Query("searchText"), page, size)
	if err != nil {
		getLogger(c).Error("doctor search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "doctor backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DoctorsBySpecializationHandler lists doctors practicing one specialization.
func (hb *HandlerBundle) DoctorsBySpecializationHandler(c *gin.Context) {
	specialization := c.Query("specialization")
	if specialization == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialization is required"})
		return
	}
	doctors, err := hb.Doctors.FindDoctorsBySpecialization(c.Request.Context(), specialization)
	if err != nil {
		getLogger(c).Error("doctors by specialization failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "doctor backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// RegisterDoctorHandler creates a doctor account through the user backend.
func (hb *HandlerBundle) RegisterDoctorHandler(c *gin.Context) {
	var reg models.DoctorRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Users.RegisterDoctor(c.Request.Context(), reg); err != nil {
		getLogger(c).Error("doctor registration failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to register doctor"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"doctor.register", "doctor", "", "registered "+reg.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "doctor registered"})
}

// UpdateDoctorHandler edits a doctor's profile.
func (hb *HandlerBundle) UpdateDoctorHandler(c *gin.Context) {
	var update models.DoctorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	doctorID := c.Param("doctorID")
	if err := hb.Doctors.UpdateDoctor(c.Request.Context(), doctorID, update); err != nil {
		getLogger(c).Error("doctor update failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update doctor"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"doctor.update", "doctor", doctorID, "profile updated")
	c.JSON(http.StatusOK, gin.H{"message": "doctor updated"})
}

// DeleteDoctorHandler removes a doctor and their backing user account.
func (hb *HandlerBundle) DeleteDoctorHandler(c *gin.Context) {
	doctorID := c.Param("doctorID")
	userID := c.Query("userId")
	if err := hb.Doctors.DeleteDoctor(c.Request.Context(), doctorID, userID); err != nil {
		getLogger(c).Error("doctor delete failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete doctor"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"doctor.delete", "doctor", doctorID, "doctor removed")
	c.JSON(http.StatusOK, gin.H{"message": "doctor deleted"})
}

// DoctorAvailableDatesHandler lists the doctor's bookable dates.
func (hb *HandlerBundle) DoctorAvailableDatesHandler(c *gin.Context) {
	dates, err := hb.Bookings.GetAvailableDatesByDoctor(c.Request.Context(), c.Param("doctorID"))
	if err != nil {
		getLogger(c).Error("available dates lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "booking backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, dates)
}

// DoctorSlotsHandler lists the free slots for one doctor on one date.
func (hb *HandlerBundle) DoctorSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	slots, err := hb.Availability.GetAvailabilitiesByDateAndDoctor(c.Request.Context(), c.Param("doctorID"), date)
	if err != nil {
		getLogger(c).Error("slot lookup failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "availability backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SaveAvailabilitiesHandler publishes a doctor's bookable window.
func (hb *HandlerBundle) SaveAvailabilitiesHandler(c *gin.Context) {
	var availability models.DoctorAvailability
	if err := c.ShouldBindJSON(&availability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Availability.SaveAvailabilities(c.Request.Context(), availability); err != nil {
		getLogger(c).Error("availability save failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save availability"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"availability.save", "doctor", availability.DoctorID, "availability published for "+availability.Date)
	c.JSON(http.StatusCreated, gin.H{"message": "availability saved"})
}
