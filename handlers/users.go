// File: handlers/users.go
package handlers

import (
	"net/http"

	"hopehealth/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateUserHandler edits a patient's profile through the user backend.
func (hb *HandlerBundle) UpdateUserHandler(c *gin.Context) {
	var update models.PatientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	userID := c.Param("userID")
	if err := hb.Users.UpdateUser(c.Request.Context(), userID, update); err != nil {
		getLogger(c).Error("user update failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update user"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"user.update", "user", userID, "profile updated")
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

// UpdatePasswordHandler resets an account password.
func (hb *HandlerBundle) UpdatePasswordHandler(c *gin.Context) {
	userID := c.Param("userID")
	password := c.Query("password")
	role := c.Query("role")
	if password == "" || role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password and role are required"})
		return
	}
	if err := hb.Users.UpdatePassword(c.Request.Context(), userID, password, role); err != nil {
		getLogger(c).Error("password update failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update password"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"user.password", "user", userID, "password reset")
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// UpdateEmailHandler changes an account's email address.
func (hb *HandlerBundle) UpdateEmailHandler(c *gin.Context) {
	userID := c.Param("userID")
	email := c.Query("email")
	role := c.Query("role")
	if email == "" || role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and role are required"})
		return
	}
	if err := hb.Users.UpdateEmail(c.Request.Context(), userID, email, role); err != nil {
		getLogger(c).Error("email update failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update email"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"user.email", "user", userID, "email changed")
	c.JSON(http.StatusOK, gin.H{"message": "email updated"})
}

// DeleteUserHandler removes an account entirely.
func (hb *HandlerBundle) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("userID")
	if err := hb.Users.DeleteUser(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("user delete failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete user"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"user.delete", "user", userID, "account removed")
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
