package contracts

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	Open(ctx context.Context, request *requests.OpenBooking) (*responses.BookingSession, error)
	Update(ctx context.Context, bookingID string, request *requests.UpdateBooking) (*responses.BookingSession, error)
	Confirm(ctx context.Context, bookingID string) (*responses.ConfirmBooking, error)
	Dismiss(ctx context.Context, bookingID string) error
}

type BookingSessionRepository interface {
	Find(ctx context.Context, bookingID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, bookingID string) error
}
