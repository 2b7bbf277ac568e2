package models

import "encoding/json"

// Envelope is the response wrapper every platform backend returns.
// The payload under "data" varies per endpoint and is decoded a second
// time into the endpoint's typed shape.
type Envelope struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// PatientPage is the paged payload of the patient list endpoint.
type PatientPage struct {
	PatientList  []Patient `json:"patientList"`
	PatientCount int       `json:"patientCount"`
}

// DoctorPage is the paged payload of the doctor list endpoint.
type DoctorPage struct {
	DataList  []Doctor `json:"dataList"`
	DataCount int      `json:"dataCount"`
}

// BookingPage is the paged payload of the booking list endpoint.
type BookingPage struct {
	BookingList  []Booking `json:"bookingList"`
	BookingCount int       `json:"bookingCount"`
}

// HealthPackagePage is the paged payload of the health package list endpoint.
type HealthPackagePage struct {
	PackageList  []HealthPackage `json:"packageList"`
	PackageCount int             `json:"packageCount"`
}
