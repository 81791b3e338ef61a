package contracts

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
}

// AppointmentStore persists the appointment list as one JSON blob under a
// fixed key. Load returns an empty list when the key is absent.
type AppointmentStore interface {
	Load(ctx context.Context) ([]models.Appointment, error)
	Save(ctx context.Context, appointments []models.Appointment) error
}
