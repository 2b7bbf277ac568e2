// File: handlers/appointments.go
package handlers

import (
	"net/http"

	"hopehealth/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func validBookingStatus(status string) bool {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		return true
	}
	return false
}

// FindAllBookingsHandler proxies the paged appointment search.
func (hb *HandlerBundle) FindAllBookingsHandler(c *gin.Context) {
	page, size := pageParams(c)
	result, err := hb.Bookings.FindAllBookings(c.Request.Context(), c.Query("searchText"), page, size)
	if err != nil {
		getLogger(c).Error("booking search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "booking backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateBookingStatusHandler moves an appointment between lifecycle states.
func (hb *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	status := c.Query("status")
	if !validBookingStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be PENDING, CONFIRMED or CANCELLED"})
		return
	}
	bookingID := c.Param("bookingID")
	if err := hb.Bookings.UpdateBookingStatus(c.Request.Context(), bookingID, status); err != nil {
		getLogger(c).Error("booking status update failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update booking status"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"booking.status", "booking", bookingID, "status set to "+status)
	c.JSON(http.StatusOK, gin.H{"message": "booking status updated"})
}

// UpdatePaymentStatusHandler marks an appointment's payment state.
func (hb *HandlerBundle) UpdatePaymentStatusHandler(c *gin.Context) {
	paymentStatus := c.Query("paymentStatus")
	if paymentStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentStatus is required"})
		return
	}
	bookingID := c.Param("bookingID")
	if err := hb.Bookings.UpdatePaymentStatus(c.Request.Context(), bookingID, paymentStatus); err != nil {
		getLogger(c).Error("payment status update failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update payment status"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"booking.payment", "booking", bookingID, "payment set to "+paymentStatus)
	c.JSON(http.StatusOK, gin.H{"message": "payment status updated"})
}

// DeleteBookingHandler removes an appointment.
func (hb *HandlerBundle) DeleteBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if err := hb.Bookings.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		getLogger(c).Error("booking delete failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete booking"})
		return
	}
	hb.Audit.Record(c.Request.Context(), hb.Sessions.CurrentIdentity(),
		"booking.delete", "booking", bookingID, "booking removed")
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// DailyBookingStatsHandler returns bookings grouped by date for the
// dashboard chart.
func (hb *HandlerBundle) DailyBookingStatsHandler(c *gin.Context) {
	result, err := hb.Bookings.GetBookingsByDate(c.Request.Context())
	if err != nil {
		getLogger(c).Error("daily booking stats failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "booking backend unavailable"})
		return
	}
	c.JSON(http.StatusOK, result)
}
