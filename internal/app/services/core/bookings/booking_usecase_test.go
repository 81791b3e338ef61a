package bookings

import (
	"context"
	"errors"
	"fmt"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/directory_dto"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySessionRepository struct {
	sessions map[string]models.BookingSession
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]models.BookingSession)}
}

func (r *memorySessionRepository) Find(ctx context.Context, bookingID string) (*models.BookingSession, error) {
	session, ok := r.sessions[bookingID]
	if !ok {
		return nil, errors.New("booking session not found")
	}
	copied := session
	return &copied, nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session *models.BookingSession) error {
	r.sessions[session.ID] = *session
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, bookingID string) error {
	delete(r.sessions, bookingID)
	return nil
}

type memoryAppointmentStore struct {
	appointments []models.Appointment
}

func (s *memoryAppointmentStore) Load(ctx context.Context) ([]models.Appointment, error) {
	copied := make([]models.Appointment, len(s.appointments))
	copy(copied, s.appointments)
	return copied, nil
}

func (s *memoryAppointmentStore) Save(ctx context.Context, appointments []models.Appointment) error {
	s.appointments = appointments
	return nil
}

type stubDoctorUsecase struct {
	doctors map[string]responses.DoctorResult
}

func (s *stubDoctorUsecase) Search(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error) {
	return &responses.SearchDoctors{}, nil
}

func (s *stubDoctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.DoctorResult, error) {
	doctor, ok := s.doctors[doctorID]
	if !ok {
		return nil, fmt.Errorf("doctor %s not found", doctorID)
	}
	return &doctor, nil
}

func (s *stubDoctorUsecase) FindSlotsByID(ctx context.Context, doctorID string) ([]responses.DaySlots, error) {
	return nil, nil
}

func (s *stubDoctorUsecase) FindLocalities(ctx context.Context, request *requests.GetLocalities) ([]responses.LocalityResult, error) {
	return nil, nil
}

func (s *stubDoctorUsecase) FindMapView(ctx context.Context, request *requests.GetMapView) (*responses.MapView, error) {
	return nil, nil
}

type recordingNotifier struct {
	bookingEvents []interface{}
	otpEvents     []interface{}
}

func (n *recordingNotifier) PublishBookingConfirmed(ctx context.Context, payload interface{}) error {
	n.bookingEvents = append(n.bookingEvents, payload)
	return nil
}

func (n *recordingNotifier) PublishOTPRequested(ctx context.Context, payload interface{}) error {
	n.otpEvents = append(n.otpEvents, payload)
	return nil
}

type stubDirectoryClient struct {
	appointmentRequests []directory_dto.AppointmentRequest
	err                 error
}

func (s *stubDirectoryClient) GetClinicList(ctx context.Context, providerType, city, locality string) ([]directory_dto.ClinicSummary, error) {
	return nil, s.err
}

func (s *stubDirectoryClient) GetClinicDetails(ctx context.Context, clinicID string) (*directory_dto.ClinicSummary, error) {
	return nil, s.err
}

func (s *stubDirectoryClient) GetLocalities(ctx context.Context, city, searchTerm string) ([]directory_dto.Locality, error) {
	return nil, s.err
}

func (s *stubDirectoryClient) GetBasicDetails(ctx context.Context, providerType, city, locality string, bounds directory_dto.Bounds) ([]directory_dto.BasicDetails, error) {
	return nil, s.err
}

func (s *stubDirectoryClient) GetClinicSlots(ctx context.Context, clinicID string) ([]directory_dto.SlotGroup, error) {
	return nil, s.err
}

func (s *stubDirectoryClient) RequestAppointment(ctx context.Context, request *directory_dto.AppointmentRequest) error {
	if s.err != nil {
		return s.err
	}
	s.appointmentRequests = append(s.appointmentRequests, *request)
	return nil
}

type fixture struct {
	usecase   *bookingUsecase
	sessions  *memorySessionRepository
	store     *memoryAppointmentStore
	notifier  *recordingNotifier
	directory *stubDirectoryClient
}

func newFixture() *fixture {
	sessions := newMemorySessionRepository()
	store := &memoryAppointmentStore{}
	notifier := &recordingNotifier{}
	directory := &stubDirectoryClient{}
	doctorStub := &stubDoctorUsecase{doctors: map[string]responses.DoctorResult{
		"5": {
			ID:        "5",
			Name:      "Dr. Siddalinga Swamy",
			Specialty: "Urologist",
			Clinic:    "Shree Veda Multispeciality Hospital, NH 65, Ashok Nagar",
			Location:  "Ramachandrapuram, Hyderabad",
		},
		"7": {
			ID:        "7",
			Name:      "Dr. Meera Iyer",
			Specialty: "Dermatologist",
			Slots: []responses.DaySlots{
				{Date: "Today", Times: []string{"10:00 AM", "10:30 AM"}},
			},
		},
	}}

	uc := NewBookingUsecase(sessions, doctorStub, store, notifier, directory, zap.NewNop()).(*bookingUsecase)
	return &fixture{usecase: uc, sessions: sessions, store: store, notifier: notifier, directory: directory}
}

func TestOpenBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("Opens in slot selection state", func(t *testing.T) {
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, constvars.BookingStateSelectingSlot, session.State)
		assert.Nil(t, session.Slot)
	})

	t.Run("Unknown doctor cannot open", func(t *testing.T) {
		_, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "999"})
		assert.Error(t, err)
	})
}

func TestConfirmGuard(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("Confirm without slot is rejected and nothing is stored", func(t *testing.T) {
		f := newFixture()
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			PatientName:  strPtr("Harsha M"),
			PatientPhone: strPtr("+91 8277634896"),
		})
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		assert.Error(t, err)
		assert.Empty(t, f.store.appointments)
		assert.Empty(t, f.notifier.bookingEvents)
	})

	t.Run("Confirm without patient details is rejected", func(t *testing.T) {
		f := newFixture()
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			SlotDate: strPtr("Today"),
			SlotTime: strPtr("10:00 AM"),
		})
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		assert.Error(t, err)
		assert.Empty(t, f.store.appointments)
	})

	t.Run("Complete session books doctor 5 for Today 10:00 AM", func(t *testing.T) {
		f := newFixture()
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			SlotDate:     strPtr("Today"),
			SlotTime:     strPtr("10:00 AM"),
			PatientName:  strPtr("Harsha M"),
			PatientPhone: strPtr("+91 8277634896"),
		})
		require.NoError(t, err)

		result, err := f.usecase.Confirm(ctx, session.ID)
		require.NoError(t, err)

		require.Len(t, f.store.appointments, 1)
		stored := f.store.appointments[0]
		assert.Equal(t, "Dr. Siddalinga Swamy", stored.DoctorName)
		assert.Equal(t, "Today", stored.Date)
		assert.Equal(t, "10:00 AM", stored.Time)
		assert.Equal(t, constvars.AppointmentStatusAttending, stored.Status)
		assert.Equal(t, "918277634896", stored.PatientPhone)
		assert.Equal(t, stored.ID, result.Appointment.ID)

		require.Len(t, f.notifier.bookingEvents, 1)
		require.Len(t, f.directory.appointmentRequests, 1)
		assert.Equal(t, "5", f.directory.appointmentRequests[0].RmdID)
	})

	t.Run("Slot outside the published schedule is rejected", func(t *testing.T) {
		f := newFixture()
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "7"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			SlotDate:     strPtr("Today"),
			SlotTime:     strPtr("11:00 AM"),
			PatientName:  strPtr("Harsha M"),
			PatientPhone: strPtr("+91 8277634896"),
		})
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		assert.Error(t, err)
		assert.Empty(t, f.store.appointments)
		assert.Empty(t, f.notifier.bookingEvents)
	})

	t.Run("Slot from the published schedule confirms", func(t *testing.T) {
		f := newFixture()
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "7"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			SlotDate:     strPtr("Today"),
			SlotTime:     strPtr("10:30 AM"),
			PatientName:  strPtr("Harsha M"),
			PatientPhone: strPtr("+91 8277634896"),
		})
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, f.store.appointments, 1)
		assert.Equal(t, "10:30 AM", f.store.appointments[0].Time)
	})

	t.Run("Double confirm is rejected", func(t *testing.T) {
		f := newFixture()
		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			SlotDate:     strPtr("Today"),
			SlotTime:     strPtr("10:00 AM"),
			PatientName:  strPtr("Harsha M"),
			PatientPhone: strPtr("+91 8277634896"),
		})
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		assert.Error(t, err)
		assert.Len(t, f.store.appointments, 1)
	})

	t.Run("Upstream failure does not block confirmation", func(t *testing.T) {
		f := newFixture()
		f.directory.err = errors.New("upstream down")

		session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
		require.NoError(t, err)

		_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{
			SlotDate:     strPtr("Today"),
			SlotTime:     strPtr("01:00 PM"),
			PatientName:  strPtr("Harsha M"),
			PatientPhone: strPtr("+91 8277634896"),
		})
		require.NoError(t, err)

		_, err = f.usecase.Confirm(ctx, session.ID)
		require.NoError(t, err)
		assert.Len(t, f.store.appointments, 1)
	})
}

func TestDismissBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
	require.NoError(t, err)

	require.NoError(t, f.usecase.Dismiss(ctx, session.ID))

	_, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{})
	assert.Error(t, err)
}

func TestUpdateBookingPartial(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	session, err := f.usecase.Open(ctx, &requests.OpenBooking{DoctorID: "5"})
	require.NoError(t, err)

	updated, err := f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{SlotDate: strPtr("Today")})
	require.NoError(t, err)
	require.NotNil(t, updated.Slot)
	assert.Equal(t, "Today", updated.Slot.Date)
	assert.Empty(t, updated.Slot.Time)

	updated, err = f.usecase.Update(ctx, session.ID, &requests.UpdateBooking{SlotTime: strPtr("06:00 PM")})
	require.NoError(t, err)
	assert.Equal(t, "Today", updated.Slot.Date)
	assert.Equal(t, "06:00 PM", updated.Slot.Time)
}
