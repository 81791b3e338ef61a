package appointments

import (
	"context"
	"fmt"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	Store contracts.AppointmentStore
	Log   *zap.Logger
}

func NewAppointmentUsecase(store contracts.AppointmentStore, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		Store: store,
		Log:   logger,
	}
}

// FindAll lists appointments newest-first for display; the store keeps them
// in append order.
func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := uc.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	reversed := make([]models.Appointment, len(appointments))
	for i, appointment := range appointments {
		reversed[len(appointments)-1-i] = appointment
	}
	return reversed, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	if !validStatus(request.Status) {
		return nil, exceptions.ErrInvalidAppointmentStatus(fmt.Errorf("status %q", request.Status))
	}

	appointments, err := uc.Store.Load(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s", appointmentID))
	}

	appointments[index].Status = request.Status
	if err := uc.Store.Save(ctx, appointments); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.String("status", request.Status),
	)

	updated := appointments[index]
	return &updated, nil
}

func validStatus(status string) bool {
	switch status {
	case constvars.AppointmentStatusAttending,
		constvars.AppointmentStatusAttended,
		constvars.AppointmentStatusAttendLater,
		constvars.AppointmentStatusMissed:
		return true
	}
	return false
}
