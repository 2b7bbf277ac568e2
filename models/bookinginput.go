package models

// BookingRequest is the create payload posted to the booking backend once a
// workflow draft has every stage filled in.
type BookingRequest struct {
	PatientID     string `json:"patientId"`
	PatientName   string `json:"patientName"`
	DoctorID      string `json:"doctorId"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}
