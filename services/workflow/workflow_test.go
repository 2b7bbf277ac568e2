package workflow

import (
	"context"
	"testing"

	"hopehealth/models"

	"github.com/stretchr/testify/require"
)

type fakeDoctors struct {
	bySpecialization map[string][]models.Doctor
	calls            int
}

func (f *fakeDoctors) FindAllDoctors(context.Context, string, int, int) (*models.DoctorPage, error) {
	return &models.DoctorPage{}, nil
}

func (f *fakeDoctors) FindDoctorsBySpecialization(_ context.Context, specialization string) ([]models.Doctor, error) {
	f.calls++
	return f.bySpecialization[specialization], nil
}

func (f *fakeDoctors) UpdateDoctor(context.Context, string, models.DoctorUpdate) error { return nil }
func (f *fakeDoctors) DeleteDoctor(context.Context, string, string) error              { return nil }

type fakeBookings struct {
	datesByDoctor map[string][]string
	created       []models.BookingRequest
	createErr     error
	dateCalls     int
}

func (f *fakeBookings) FindAllBookings(context.Context, string, int, int) (*models.BookingPage, error) {
	return &models.BookingPage{}, nil
}

func (f *fakeBookings) CreateBooking(_ context.Context, req models.BookingRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

func (f *fakeBookings) GetAvailableDatesByDoctor(_ context.Context, doctorID string) ([]string, error) {
	f.dateCalls++
	return f.datesByDoctor[doctorID], nil
}

func (f *fakeBookings) GetBookingsByDate(context.Context) ([]models.DailyBookingCount, error) {
	return nil, nil
}
func (f *fakeBookings) UpdateBookingStatus(context.Context, string, string) error { return nil }
func (f *fakeBookings) UpdatePaymentStatus(context.Context, string, string) error { return nil }
func (f *fakeBookings) DeleteBooking(context.Context, string) error               { return nil }

type fakeAvailability struct {
	slotsByDate map[string][]string
	slotCalls   int
}

func (f *fakeAvailability) GetAvailabilitiesByDateAndDoctor(_ context.Context, _, date string) ([]string, error) {
	f.slotCalls++
	return f.slotsByDate[date], nil
}

func (f *fakeAvailability) FindSelectedDatesByDoctorID(context.Context, string) ([]string, error) {
	return nil, nil
}
func (f *fakeAvailability) SaveAvailabilities(context.Context, models.DoctorAvailability) error {
	return nil
}

func newTestWorkflow() (*DefaultWorkflowService, *fakeDoctors, *fakeBookings, *fakeAvailability) {
	doctors := &fakeDoctors{
		bySpecialization: map[string][]models.Doctor{
			"Cardiology": {
				{DoctorID: "d-1", Name: "Dr. Silva", Specialization: "Cardiology"},
				{DoctorID: "d-2", Name: "Dr. Perera", Specialization: "Cardiology"},
			},
		},
	}
	bookings := &fakeBookings{
		datesByDoctor: map[string][]string{
			"d-1": {"2026-09-10", "2026-09-11"},
		},
	}
	availability := &fakeAvailability{
		slotsByDate: map[string][]string{
			"2026-09-10": {"09:00", "09:30"},
		},
	}
	svc := &DefaultWorkflowService{
		Doctors:      doctors,
		Bookings:     bookings,
		Availability: availability,
		Drafts:       NewMemoryDraftStore(),
	}
	return svc, doctors, bookings, availability
}

// completeDraft walks a draft through every stage up to and including time.
func completeDraft(t *testing.T, svc *DefaultWorkflowService) *Draft {
	t.Helper()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)

	draft, err = svc.SelectPatient(ctx, draft.ID, "p-1", "John Fernando")
	require.NoError(t, err)

	draft, notice, err := svc.SelectSpecialization(ctx, draft.ID, "Cardiology")
	require.NoError(t, err)
	require.Nil(t, notice)

	draft, notice, err = svc.SelectDoctor(ctx, draft.ID, "d-1")
	require.NoError(t, err)
	require.Nil(t, notice)

	draft, notice, err = svc.SelectDate(ctx, draft.ID, "2026-09-10")
	require.NoError(t, err)
	require.Nil(t, notice)

	draft, err = svc.SelectTime(ctx, draft.ID, "09:00")
	require.NoError(t, err)
	return draft
}

func TestCreateDraftHasDefaultReason(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	draft, err := svc.CreateDraft(context.Background(), "root.admin")
	require.NoError(t, err)
	require.Equal(t, DefaultReason, draft.Reason)
	require.NotEmpty(t, draft.ID)
}

func TestStageOrderIsEnforced(t *testing.T) {
	svc, doctors, bookings, availability := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)

	_, _, err = svc.SelectSpecialization(ctx, draft.ID, "Cardiology")
	require.ErrorIs(t, err, ErrStageOrder)

	_, _, err = svc.SelectDoctor(ctx, draft.ID, "d-1")
	require.ErrorIs(t, err, ErrStageOrder)

	_, _, err = svc.SelectDate(ctx, draft.ID, "2026-09-10")
	require.ErrorIs(t, err, ErrStageOrder)

	_, err = svc.SelectTime(ctx, draft.ID, "09:00")
	require.ErrorIs(t, err, ErrStageOrder)

	// None of the rejected stages may have reached a backend.
	require.Zero(t, doctors.calls)
	require.Zero(t, bookings.dateCalls)
	require.Zero(t, availability.slotCalls)
}

func TestReselectingPatientClearsDownstreamStages(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	ctx := context.Background()

	draft := completeDraft(t, svc)

	draft, err := svc.SelectPatient(ctx, draft.ID, "p-2", "Jane Mendis")
	require.NoError(t, err)

	require.Equal(t, "p-2", draft.Patient.ID)
	require.Empty(t, draft.Specialization)
	require.Empty(t, draft.DoctorOptions)
	require.Empty(t, draft.Doctor.ID)
	require.Empty(t, draft.AvailableDates)
	require.Empty(t, draft.SelectedDate)
	require.Empty(t, draft.AvailableSlots)
	require.Empty(t, draft.SelectedTime)
}

func TestReselectingDoctorClearsDateAndTime(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	ctx := context.Background()

	draft := completeDraft(t, svc)

	draft, notice, err := svc.SelectDoctor(ctx, draft.ID, "d-2")
	require.NoError(t, err)
	require.NotNil(t, notice) // d-2 has no open dates
	require.Equal(t, "NO_AVAILABLE_DATES", notice.Code)

	require.Equal(t, "d-2", draft.Doctor.ID)
	require.Empty(t, draft.SelectedDate)
	require.Empty(t, draft.SelectedTime)
	require.Empty(t, draft.AvailableSlots)
}

func TestSelectDoctorOutsideOfferedListIsRejected(t *testing.T) {
	svc, _, bookings, _ := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)
	_, err = svc.SelectPatient(ctx, draft.ID, "p-1", "John Fernando")
	require.NoError(t, err)
	_, _, err = svc.SelectSpecialization(ctx, draft.ID, "Cardiology")
	require.NoError(t, err)

	_, _, err = svc.SelectDoctor(ctx, draft.ID, "d-99")
	require.ErrorIs(t, err, ErrDoctorNotOffered)
	require.Zero(t, bookings.dateCalls)
}

func TestSelectDateOutsideOfferedListSkipsSlotFetch(t *testing.T) {
	svc, _, _, availability := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)
	_, err = svc.SelectPatient(ctx, draft.ID, "p-1", "John Fernando")
	require.NoError(t, err)
	_, _, err = svc.SelectSpecialization(ctx, draft.ID, "Cardiology")
	require.NoError(t, err)
	_, _, err = svc.SelectDoctor(ctx, draft.ID, "d-1")
	require.NoError(t, err)

	_, _, err = svc.SelectDate(ctx, draft.ID, "2026-12-25")
	require.ErrorIs(t, err, ErrDateNotAvailable)
	require.Zero(t, availability.slotCalls)
}

func TestSelectTimeOutsideOfferedListIsRejected(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	ctx := context.Background()

	draft := completeDraft(t, svc)

	_, err := svc.SelectTime(ctx, draft.ID, "23:00")
	require.ErrorIs(t, err, ErrTimeNotAvailable)
}

func TestEmptyDoctorListKeepsSpecializationAndNotices(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)
	_, err = svc.SelectPatient(ctx, draft.ID, "p-1", "John Fernando")
	require.NoError(t, err)

	draft, notice, err := svc.SelectSpecialization(ctx, draft.ID, "Dermatology")
	require.NoError(t, err)
	require.NotNil(t, notice)
	require.Equal(t, "NO_DOCTORS", notice.Code)
	require.Equal(t, "Dermatology", draft.Specialization)
	require.Empty(t, draft.DoctorOptions)
}

func TestSubmitIncompleteDraftNeverReachesBackend(t *testing.T) {
	svc, _, bookings, _ := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)
	_, err = svc.SelectPatient(ctx, draft.ID, "p-1", "John Fernando")
	require.NoError(t, err)

	err = svc.Submit(ctx, draft.ID)
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"specialization", "doctor", "date", "time"}, missing.Fields)
	require.Empty(t, bookings.created)

	// The draft survives the failed submit.
	_, err = svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
}

func TestSubmitCompleteDraftPostsOnceAndDiscardsDraft(t *testing.T) {
	svc, _, bookings, _ := newTestWorkflow()
	ctx := context.Background()

	draft := completeDraft(t, svc)

	require.NoError(t, svc.Submit(ctx, draft.ID))
	require.Len(t, bookings.created, 1)

	req := bookings.created[0]
	require.Equal(t, "p-1", req.PatientID)
	require.Equal(t, "John Fernando", req.PatientName)
	require.Equal(t, "d-1", req.DoctorID)
	require.Equal(t, "Dr. Silva", req.DoctorName)
	require.Equal(t, "2026-09-10", req.Date)
	require.Equal(t, "09:00", req.Time)
	require.Equal(t, DefaultReason, req.Reason)
	require.Equal(t, models.BookingStatusPending, req.Status)
	require.Equal(t, models.PaymentStatusCompleted, req.PaymentStatus)

	_, err := svc.GetDraft(ctx, draft.ID)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	svc, _, bookings, _ := newTestWorkflow()
	ctx := context.Background()

	draft := completeDraft(t, svc)
	bookings.createErr = context.DeadlineExceeded

	require.Error(t, svc.Submit(ctx, draft.ID))

	kept, err := svc.GetDraft(ctx, draft.ID)
	require.NoError(t, err)
	require.Equal(t, "09:00", kept.SelectedTime)
}

func TestSetReasonBlankFallsBackToDefault(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)

	draft, err = svc.SetReason(ctx, draft.ID, "Chest pain")
	require.NoError(t, err)
	require.Equal(t, "Chest pain", draft.Reason)

	draft, err = svc.SetReason(ctx, draft.ID, "   ")
	require.NoError(t, err)
	require.Equal(t, DefaultReason, draft.Reason)
}

func TestCancelDiscardsDraft(t *testing.T) {
	svc, _, _, _ := newTestWorkflow()
	ctx := context.Background()

	draft, err := svc.CreateDraft(ctx, "root.admin")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, draft.ID))
	_, err = svc.GetDraft(ctx, draft.ID)
	require.ErrorIs(t, err, ErrDraftNotFound)

	require.ErrorIs(t, svc.Cancel(ctx, "missing"), ErrDraftNotFound)
}
