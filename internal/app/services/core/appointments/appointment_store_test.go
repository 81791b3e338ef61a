package appointments

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRedis marshals values on write the same way the real repository does,
// so these tests cover the stored JSON shape end to end.
type memoryRedis struct {
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: make(map[string]string)}
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.data[key] = string(raw)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return r.data[key], nil
}

func (r *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func TestAppointmentStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	redis := newMemoryRedis()
	store := NewAppointmentStore(redis)

	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	saved := []models.Appointment{
		{
			ID:           "a1",
			DoctorID:     "5",
			DoctorName:   "Dr. Siddalinga Swamy",
			Specialty:    "Urologist",
			Date:         "Today",
			Time:         "10:00 AM",
			PatientName:  "Harsha M",
			PatientPhone: "918277634896",
			Status:       constvars.AppointmentStatusAttending,
			CreatedAt:    created,
		},
	}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved[0], loaded[0])
}

func TestAppointmentStoreAbsentKey(t *testing.T) {
	store := NewAppointmentStore(newMemoryRedis())

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestAppointmentStoreCorruptBlob(t *testing.T) {
	redis := newMemoryRedis()
	redis.data[constvars.StorageKeyAppointments] = "{not json"
	store := NewAppointmentStore(redis)

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}
