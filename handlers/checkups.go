// File: handlers/checkups.go
package handlers

import (
	"net/http"

	"hopehealth/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAllHealthPackagesHandler proxies the paged health-package search.
func (hb *HandlerBundle) GetAllHealthPackagesHandler(c *gin.Context) {
	page, size := pageParams(c)
	result, err := hb.HealthPackages.GetAllHealthPackages(c.Request.Context(), c.Query("searchText"), page, size)
	if err != nil {
		getLogger(c).Error("health package search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "health package backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateHealthPackageHandler publishes a new checkup package.
func (hb *HandlerBundle) CreateHealthPackageHandler(c *gin.Context) {
	var pkg models.HealthPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.HealthPackages.CreateHealthPackage(c.Request.Context(), pkg); err != nil {
		getLogger(c).Error("health package create failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create health package"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"package.create", "healthPackage", "", "created "+pkg.PackageTitle)
	c.JSON(http.StatusCreated, gin.H{"message": "health package created"})
}

// DeleteHealthPackageHandler removes a checkup package.
func (hb *HandlerBundle) DeleteHealthPackageHandler(c *gin.Context) {
	packageID := c.Param("packageID")
	if err := hb.HealthPackages.DeletePackageByID(c.Request.Context(), packageID); err != nil {
		getLogger(c).Error("health package delete failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete health package"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"package.delete", "healthPackage", packageID, "package removed")
	c.JSON(http.StatusOK, gin.H{"message": "health package deleted"})
}
