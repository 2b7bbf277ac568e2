// File: services/workflow/interface.go
package workflow

import (
	"context"

	"hopehealth/clients"
	"hopehealth/services/audit"
)

// Service drives the staged booking workflow. Each stage call loads the
// draft, applies the selection, and persists the result; fetching stages
// may also return a Notice when the backend had nothing to offer.
type Service interface {
	CreateDraft(ctx context.Context, actor string) (*Draft, error)
	GetDraft(ctx context.Context, draftID string) (*Draft, error)
	SelectPatient(ctx context.Context, draftID, patientID, patientName string) (*Draft, error)
	SelectSpecialization(ctx context.Context, draftID, specialization string) (*Draft, *Notice, error)
	SelectDoctor(ctx context.Context, draftID, doctorID string) (*Draft, *Notice, error)
	SelectDate(ctx context.Context, draftID, date string) (*Draft, *Notice, error)
	SelectTime(ctx context.Context, draftID, slot string) (*Draft, error)
	SetReason(ctx context.Context, draftID, reason string) (*Draft, error)
	Submit(ctx context.Context, draftID string) error
	Cancel(ctx context.Context, draftID string) error
}

// DefaultWorkflowService implements Service on top of the backend clients
// and a draft store.
type DefaultWorkflowService struct {
	Doctors      clients.DoctorAPI
	Bookings     clients.BookingAPI
	Availability clients.AvailabilityAPI
	Drafts       DraftStore
	Audit        audit.Recorder
}
