package appointments

import (
	"context"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// appointmentStore keeps the whole appointment list as one JSON array under a
// fixed key. Mutations are read-modify-write with last-write-wins; there is
// no per-record locking.
type appointmentStore struct {
	RedisRepository contracts.RedisRepository
}

func NewAppointmentStore(redisRepository contracts.RedisRepository) contracts.AppointmentStore {
	return &appointmentStore{RedisRepository: redisRepository}
}

func (s *appointmentStore) Load(ctx context.Context) ([]models.Appointment, error) {
	raw, err := s.RedisRepository.Get(ctx, constvars.StorageKeyAppointments)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []models.Appointment{}, nil
	}

	var appointments []models.Appointment
	if err := json.Unmarshal([]byte(raw), &appointments); err != nil {
		return nil, exceptions.ErrStorageDecodeBlob(err, constvars.StorageKeyAppointments)
	}
	return appointments, nil
}

func (s *appointmentStore) Save(ctx context.Context, appointments []models.Appointment) error {
	// No TTL: the list lives until overwritten.
	if err := s.RedisRepository.Set(ctx, constvars.StorageKeyAppointments, appointments, 0); err != nil {
		return exceptions.ErrStorageWriteBlob(err, constvars.StorageKeyAppointments)
	}
	return nil
}
