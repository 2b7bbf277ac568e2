// File: services/workflow/workflow.go
package workflow

import (
	"context"
	"strings"
	"time"

	"hopehealth/models"
	"hopehealth/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateDraft opens a fresh draft with only the reason prefilled.
func (s *DefaultWorkflowService) CreateDraft(ctx context.Context, actor string) (*Draft, error) {
	now := time.Now()
	draft := &Draft{
		ID:        uuid.New().String(),
		Reason:    DefaultReason,
		CreatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking draft created",
		zap.String("draftId", draft.ID), zap.String("actor", actor))
	return draft, nil
}

// GetDraft returns the draft as currently persisted.
func (s *DefaultWorkflowService) GetDraft(ctx context.Context, draftID string) (*Draft, error) {
	return s.Drafts.Get(ctx, draftID)
}

// SelectPatient records the chosen patient. Re-selecting a patient clears
// every downstream stage.
func (s *DefaultWorkflowService) SelectPatient(ctx context.Context, draftID, patientID, patientName string) (*Draft, error) {
	if strings.TrimSpace(patientID) == "" || strings.TrimSpace(patientName) == "" {
		return nil, ErrStageOrder
	}
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	draft.Patient = PartyRef{ID: patientID, Name: patientName}
	draft.clearFromSpecialization()

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectSpecialization records the specialization and fetches the doctors
// who practice it. An empty doctor list is not an error: the draft keeps
// the specialization and the caller gets a notice.
func (s *DefaultWorkflowService) SelectSpecialization(ctx context.Context, draftID, specialization string) (*Draft, *Notice, error) {
	if strings.TrimSpace(specialization) == "" {
		return nil, nil, ErrStageOrder
	}
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if draft.Patient.ID == "" {
		return nil, nil, ErrStageOrder
	}

	doctors, err := s.Doctors.FindDoctorsBySpecialization(ctx, specialization)
	if err != nil {
		return nil, nil, err
	}

	draft.Specialization = specialization
	draft.clearFromDoctor()
	draft.DoctorOptions = doctors

	if err := s.save(ctx, draft); err != nil {
		return nil, nil, err
	}
	if len(doctors) == 0 {
		return draft, noticeNoDoctors, nil
	}
	return draft, nil, nil
}

// SelectDoctor records the chosen doctor, provided they were offered for
// the current specialization, and fetches the doctor's open dates.
func (s *DefaultWorkflowService) SelectDoctor(ctx context.Context, draftID, doctorID string) (*Draft, *Notice, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if draft.Specialization == "" {
		return nil, nil, ErrStageOrder
	}
	doctor, ok := draft.hasDoctorOption(doctorID)
	if !ok {
		return nil, nil, ErrDoctorNotOffered
	}

	dates, err := s.Bookings.GetAvailableDatesByDoctor(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}

	draft.Doctor = PartyRef{ID: doctor.DoctorID, Name: doctor.Name}
	draft.clearFromDate()
	draft.AvailableDates = dates

	if err := s.save(ctx, draft); err != nil {
		return nil, nil, err
	}
	if len(dates) == 0 {
		return draft, noticeNoDates, nil
	}
	return draft, nil, nil
}

// SelectDate records the chosen date, provided it is one of the doctor's
// open dates, and fetches the free slots on it. A date outside the offered
// set is rejected before any slot lookup.
func (s *DefaultWorkflowService) SelectDate(ctx context.Context, draftID, date string) (*Draft, *Notice, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if draft.Doctor.ID == "" {
		return nil, nil, ErrStageOrder
	}
	if !contains(draft.AvailableDates, date) {
		return nil, nil, ErrDateNotAvailable
	}

	slots, err := s.Availability.GetAvailabilitiesByDateAndDoctor(ctx, draft.Doctor.ID, date)
	if err != nil {
		return nil, nil, err
	}

	draft.SelectedDate = date
	draft.clearFromTime()
	draft.AvailableSlots = slots

	if err := s.save(ctx, draft); err != nil {
		return nil, nil, err
	}
	if len(slots) == 0 {
		return draft, noticeNoSlots, nil
	}
	return draft, nil, nil
}

// SelectTime records the chosen slot, provided it is one of the free slots
// on the selected date.
func (s *DefaultWorkflowService) SelectTime(ctx context.Context, draftID, slot string) (*Draft, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.SelectedDate == "" {
		return nil, ErrStageOrder
	}
	if !contains(draft.AvailableSlots, slot) {
		return nil, ErrTimeNotAvailable
	}

	draft.SelectedTime = slot
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetReason records the visit reason. A blank reason falls back to the
// default rather than emptying the stage.
func (s *DefaultWorkflowService) SetReason(ctx context.Context, draftID, reason string) (*Draft, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultReason
	}
	draft.Reason = reason

	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit posts the completed draft to the booking backend. Every stage is
// validated first; an incomplete draft never reaches the network. On
// success the draft is discarded, on failure it is kept so the admin can
// retry.
func (s *DefaultWorkflowService) Submit(ctx context.Context, draftID string) error {
	logger := utils.GetLogger()

	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return err
	}
	if missing := draft.missingFields(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	req := models.BookingRequest{
		PatientID:     draft.Patient.ID,
		PatientName:   draft.Patient.Name,
		DoctorID:      draft.Doctor.ID,
		DoctorName:    draft.Doctor.Name,
		Date:          draft.SelectedDate,
		Time:          draft.SelectedTime,
		Reason:        draft.Reason,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusCompleted,
	}
	if err := s.Bookings.CreateBooking(ctx, req); err != nil {
		logger.Error("booking submission failed",
			zap.String("draftId", draftID), zap.Error(err))
		return err
	}

	if err := s.Drafts.Delete(ctx, draftID); err != nil {
		logger.Warn("failed to discard submitted draft",
			zap.String("draftId", draftID), zap.Error(err))
	}

	if s.Audit != nil {
		s.Audit.Record(ctx, draft.CreatedBy, "booking.create", "booking", draft.Patient.ID,
			"booked "+draft.Doctor.Name+" on "+draft.SelectedDate+" at "+draft.SelectedTime)
	}
	logger.Info("booking submitted",
		zap.String("draftId", draftID),
		zap.String("doctorId", draft.Doctor.ID),
		zap.String("date", draft.SelectedDate))
	return nil
}

// Cancel discards the draft without submitting anything.
func (s *DefaultWorkflowService) Cancel(ctx context.Context, draftID string) error {
	if _, err := s.Drafts.Get(ctx, draftID); err != nil {
		return err
	}
	return s.Drafts.Delete(ctx, draftID)
}

func (s *DefaultWorkflowService) save(ctx context.Context, draft *Draft) error {
	draft.UpdatedAt = time.Now()
	return s.Drafts.Save(ctx, draft)
}
