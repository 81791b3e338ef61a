package bookings

import (
	"context"
	"fmt"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

// bookingSessionRepository stores sessions in Redis with a TTL. A session
// that outlives its TTL silently returns to idle.
type bookingSessionRepository struct {
	RedisRepository contracts.RedisRepository
	SessionTTL      time.Duration
}

func NewBookingSessionRepository(redisRepository contracts.RedisRepository, sessionTTL time.Duration) contracts.BookingSessionRepository {
	return &bookingSessionRepository{
		RedisRepository: redisRepository,
		SessionTTL:      sessionTTL,
	}
}

func (r *bookingSessionRepository) Find(ctx context.Context, bookingID string) (*models.BookingSession, error) {
	key := constvars.RedisKeyPrefixBookingSession + bookingID
	raw, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrBookingSessionNotFound(fmt.Errorf("booking %s", bookingID))
	}

	session := new(models.BookingSession)
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, exceptions.ErrStorageDecodeBlob(err, key)
	}
	return session, nil
}

func (r *bookingSessionRepository) Save(ctx context.Context, session *models.BookingSession) error {
	key := constvars.RedisKeyPrefixBookingSession + session.ID
	return r.RedisRepository.Set(ctx, key, session, r.SessionTTL)
}

func (r *bookingSessionRepository) Delete(ctx context.Context, bookingID string) error {
	return r.RedisRepository.Delete(ctx, constvars.RedisKeyPrefixBookingSession+bookingID)
}
