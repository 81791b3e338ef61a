package bookings

import (
	"context"
	"fmt"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/directory_dto"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
	"medifind-service/internal/pkg/exceptions"
	"medifind-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	SessionRepository contracts.BookingSessionRepository
	DoctorUsecase     contracts.DoctorUsecase
	AppointmentStore  contracts.AppointmentStore
	Notifier          contracts.Notifier
	DirectoryClient   contracts.DirectoryClient
	Log               *zap.Logger
}

func NewBookingUsecase(
	sessionRepository contracts.BookingSessionRepository,
	doctorUsecase contracts.DoctorUsecase,
	appointmentStore contracts.AppointmentStore,
	notifier contracts.Notifier,
	directoryClient contracts.DirectoryClient,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		SessionRepository: sessionRepository,
		DoctorUsecase:     doctorUsecase,
		AppointmentStore:  appointmentStore,
		Notifier:          notifier,
		DirectoryClient:   directoryClient,
		Log:               logger,
	}
}

// Open starts a fresh session in the slot-selection state. The doctor must
// exist; slot and patient fields start empty.
func (uc *bookingUsecase) Open(ctx context.Context, request *requests.OpenBooking) (*responses.BookingSession, error) {
	if _, err := uc.DoctorUsecase.FindByID(ctx, request.DoctorID); err != nil {
		return nil, err
	}

	session := &models.BookingSession{
		ID:        uuid.NewString(),
		DoctorID:  request.DoctorID,
		State:     constvars.BookingStateSelectingSlot,
		CreatedAt: time.Now(),
	}
	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Open done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, session.ID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	return buildSessionResponse(session), nil
}

// Update replaces any subset of the slot and patient fields. Repeating the
// same update is a no-op; a confirmed session can no longer change.
func (uc *bookingUsecase) Update(ctx context.Context, bookingID string, request *requests.UpdateBooking) (*responses.BookingSession, error) {
	session, err := uc.SessionRepository.Find(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if session.State == constvars.BookingStateConfirmed {
		return nil, exceptions.ErrBookingAlreadyConfirmed(fmt.Errorf("booking %s", bookingID))
	}

	if request.SlotDate != nil || request.SlotTime != nil {
		slot := models.BookingSlot{}
		if session.Slot != nil {
			slot = *session.Slot
		}
		if request.SlotDate != nil {
			slot.Date = *request.SlotDate
		}
		if request.SlotTime != nil {
			slot.Time = *request.SlotTime
		}
		session.Slot = &slot
	}
	if request.PatientName != nil {
		session.PatientName = *request.PatientName
	}
	if request.PatientPhone != nil {
		session.PatientPhone = utils.NormalizePhoneDigits(*request.PatientPhone)
	}

	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}
	return buildSessionResponse(session), nil
}

// Confirm runs the guard, snapshots the appointment into the store, notifies
// the broker, forwards the request upstream best-effort, and marks the
// session confirmed. Nothing is appended when the guard fails.
func (uc *bookingUsecase) Confirm(ctx context.Context, bookingID string) (*responses.ConfirmBooking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionRepository.Find(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if session.State == constvars.BookingStateConfirmed {
		return nil, exceptions.ErrBookingAlreadyConfirmed(fmt.Errorf("booking %s", bookingID))
	}
	if !session.ReadyToConfirm() {
		return nil, exceptions.ErrBookingIncomplete(fmt.Errorf("booking %s", bookingID))
	}

	doctor, err := uc.DoctorUsecase.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if !slotOffered(doctor.Slots, session.Slot) {
		return nil, exceptions.ErrSlotNotOffered(fmt.Errorf("booking %s slot %s %s", bookingID, session.Slot.Date, session.Slot.Time))
	}

	appointment := models.Appointment{
		ID:           uuid.NewString(),
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Specialty:    doctor.Specialty,
		Clinic:       doctor.Clinic,
		Location:     doctor.Location,
		Date:         session.Slot.Date,
		Time:         session.Slot.Time,
		PatientName:  session.PatientName,
		PatientPhone: session.PatientPhone,
		Status:       constvars.AppointmentStatusAttending,
		CreatedAt:    time.Now(),
	}

	appointments, err := uc.AppointmentStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	appointments = append(appointments, appointment)
	if err := uc.AppointmentStore.Save(ctx, appointments); err != nil {
		return nil, err
	}

	session.State = constvars.BookingStateConfirmed
	if err := uc.SessionRepository.Save(ctx, session); err != nil {
		return nil, err
	}

	if err := uc.Notifier.PublishBookingConfirmed(ctx, appointment); err != nil {
		uc.Log.Warn("bookingUsecase.Confirm event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	// Best effort: the local record is the source of truth, the upstream
	// request is a courtesy to the clinic's own system.
	upstreamRequest := &directory_dto.AppointmentRequest{
		ClientMobile:      appointment.PatientPhone,
		ApptDate:          appointment.Date,
		ApptTime:          appointment.Time,
		FormattedApptTime: appointment.Time,
		RmdID:             appointment.DoctorID,
		Name:              appointment.PatientName,
		ClinicName:        appointment.Clinic,
		Locality:          appointment.Location,
		ClinicVerified:    "1",
		ReqFrom:           "api",
	}
	if err := uc.DirectoryClient.RequestAppointment(ctx, upstreamRequest); err != nil {
		uc.Log.Warn("bookingUsecase.Confirm upstream forward failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	uc.Log.Info("bookingUsecase.Confirm done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingAppointmentKey, appointment.ID),
	)

	return &responses.ConfirmBooking{Appointment: appointment}, nil
}

// Dismiss drops the session and everything selected in it.
func (uc *bookingUsecase) Dismiss(ctx context.Context, bookingID string) error {
	if _, err := uc.SessionRepository.Find(ctx, bookingID); err != nil {
		return err
	}
	return uc.SessionRepository.Delete(ctx, bookingID)
}

// slotOffered checks the chosen slot against the doctor's published schedule.
// Providers resolved from the upstream directory carry no stored schedule;
// their sessions accept the slot as selected.
func slotOffered(slots []responses.DaySlots, slot *models.BookingSlot) bool {
	if len(slots) == 0 {
		return true
	}
	for _, day := range slots {
		if day.Date != slot.Date {
			continue
		}
		for _, t := range day.Times {
			if t == slot.Time {
				return true
			}
		}
	}
	return false
}

func buildSessionResponse(session *models.BookingSession) *responses.BookingSession {
	return &responses.BookingSession{
		ID:           session.ID,
		DoctorID:     session.DoctorID,
		State:        session.State,
		Slot:         session.Slot,
		PatientName:  session.PatientName,
		PatientPhone: session.PatientPhone,
	}
}
