package models

// Doctor represents a doctor record held by the doctor backend.
type Doctor struct {
	DoctorID       string `json:"doctorId"`
	UserID         string `json:"userId,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
	Experience     string `json:"experience,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	LicenceNo      string `json:"licenceNo,omitempty"`
}

// DoctorRegistration is the payload for registering a new doctor user.
type DoctorRegistration struct {
	Email          string `json:"email" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Experience     string `json:"experience" binding:"required"`
	Hospital       string `json:"hospital" binding:"required"`
	Address        string `json:"address" binding:"required"`
	LicenceNo      string `json:"licenceNo" binding:"required"`
	City           string `json:"city" binding:"required"`
}

// DoctorUpdate is the payload for editing an existing doctor's profile.
type DoctorUpdate struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Hospital       string `json:"hospital"`
	Address        string `json:"address"`
	City           string `json:"city"`
	LicenceNo      string `json:"licenceNo"`
}

// DoctorAvailability is the payload for publishing a doctor's bookable window.
type DoctorAvailability struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime string `json:"startTime" binding:"required"` // "HH:mm"
	EndTime   string `json:"endTime" binding:"required"`   // "HH:mm"
}
