package appointments

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore keeps the blob in memory with the same append-order contract as
// the Redis-backed store.
type memoryStore struct {
	appointments []models.Appointment
	loadErr      error
	saveErr      error
}

func (s *memoryStore) Load(ctx context.Context) ([]models.Appointment, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	copied := make([]models.Appointment, len(s.appointments))
	copy(copied, s.appointments)
	return copied, nil
}

func (s *memoryStore) Save(ctx context.Context, appointments []models.Appointment) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.appointments = appointments
	return nil
}

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "a1", DoctorName: "Dr. Anjali Desai", Status: "Attending", CreatedAt: time.Now().Add(-2 * time.Hour)},
		{ID: "a2", DoctorName: "Dr. Siddalinga Swamy", Status: "Attending", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "a3", DoctorName: "Dr. Vikram Singh", Status: "Missed", CreatedAt: time.Now()},
	}
}

func TestFindAllNewestFirst(t *testing.T) {
	uc := NewAppointmentUsecase(&memoryStore{appointments: sampleAppointments()}, zap.NewNop())

	result, err := uc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "a3", result[0].ID)
	assert.Equal(t, "a2", result[1].ID)
	assert.Equal(t, "a1", result[2].ID)
}

func TestFindAllEmptyStore(t *testing.T) {
	uc := NewAppointmentUsecase(&memoryStore{}, zap.NewNop())

	result, err := uc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Valid transition persists", func(t *testing.T) {
		store := &memoryStore{appointments: sampleAppointments()}
		uc := NewAppointmentUsecase(store, zap.NewNop())

		updated, err := uc.UpdateStatus(context.Background(), "a2", &requests.UpdateAppointmentStatus{Status: "Attended"})
		require.NoError(t, err)
		assert.Equal(t, "Attended", updated.Status)
		assert.Equal(t, "Attended", store.appointments[1].Status)
	})

	t.Run("Attend Later is a valid status", func(t *testing.T) {
		store := &memoryStore{appointments: sampleAppointments()}
		uc := NewAppointmentUsecase(store, zap.NewNop())

		updated, err := uc.UpdateStatus(context.Background(), "a1", &requests.UpdateAppointmentStatus{Status: "Attend Later"})
		require.NoError(t, err)
		assert.Equal(t, "Attend Later", updated.Status)
	})

	t.Run("Unknown id is not found", func(t *testing.T) {
		store := &memoryStore{appointments: sampleAppointments()}
		uc := NewAppointmentUsecase(store, zap.NewNop())

		_, err := uc.UpdateStatus(context.Background(), "nope", &requests.UpdateAppointmentStatus{Status: "Attended"})
		assert.Error(t, err)
		assert.Equal(t, "Attending", store.appointments[0].Status)
	})

	t.Run("Invalid status is rejected before any write", func(t *testing.T) {
		store := &memoryStore{appointments: sampleAppointments()}
		uc := NewAppointmentUsecase(store, zap.NewNop())

		_, err := uc.UpdateStatus(context.Background(), "a1", &requests.UpdateAppointmentStatus{Status: "Cancelled"})
		assert.Error(t, err)
		assert.Equal(t, "Attending", store.appointments[0].Status)
	})
}
