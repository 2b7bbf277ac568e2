// File: handlers/bundle.go
package handlers

import (
	"hopehealth/clients"
	"hopehealth/services/audit"
	"hopehealth/services/session"
	"hopehealth/services/workflow"
)

// HandlerBundle groups the services and backend clients the endpoint
// handlers close over. Routes pull handlers off this one struct.
type HandlerBundle struct {
	Sessions session.Service
	Workflow workflow.Service
	Audit    audit.Service

	Users          clients.UserAPI
	Patients       clients.PatientAPI
	Doctors        clients.DoctorAPI
	Bookings       clients.BookingAPI
	Availability   clients.AvailabilityAPI
	Specialization clients.SpecializationAPI
	Hospitals      clients.HospitalAPI
	News           clients.NewsAPI
	HealthPackages clients.HealthPackageAPI
}
