package models

// Patient represents a patient record held by the patient backend.
type Patient struct {
	PatientID string `json:"patientId"`
	UserID    string `json:"userId,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// PatientRegistration is the payload for registering a new patient user.
type PatientRegistration struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Age         int    `json:"age" binding:"required"`
	CreatedDate string `json:"createdDate"`
}

// PatientUpdate is the payload for editing an existing patient's profile.
type PatientUpdate struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
}

// MonthlyPatientCount is one data point of the dashboard's monthly overview.
type MonthlyPatientCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DailyPatientCount is one data point of the dashboard's registrations-by-date chart.
type DailyPatientCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
