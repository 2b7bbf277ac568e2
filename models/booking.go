package models

// Booking represents a confirmed appointment record.
type Booking struct {
	BookingID     string `json:"bookingId"`
	PatientID     string `json:"patientId"`
	PatientName   string `json:"patientName"`
	DoctorID      string `json:"doctorId"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`        // PENDING, CONFIRMED, CANCELLED
	PaymentStatus string `json:"paymentStatus"` // PENDING, COMPLETED
}

// Appointment status values accepted by the booking backend.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"

	PaymentStatusCompleted = "COMPLETED"
)

// DailyBookingCount is one data point of the dashboard's bookings-by-date chart.
type DailyBookingCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
