package session

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

// Service stores login sessions in Redis keyed by session id. A missing key
// means the session expired or never existed.
type Service struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) *Service {
	return &Service{RedisRepository: redisRepository}
}

func (s *Service) Create(ctx context.Context, sessionData *models.Session, ttl time.Duration) error {
	key := constvars.RedisKeyPrefixSession + sessionData.SessionID
	return s.RedisRepository.Set(ctx, key, sessionData, ttl)
}

func (s *Service) FindByID(ctx context.Context, sessionID string) (*models.Session, error) {
	key := constvars.RedisKeyPrefixSession + sessionID
	raw, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("session %s not found", sessionID))
	}

	sessionData := new(models.Session)
	if err := json.Unmarshal([]byte(raw), sessionData); err != nil {
		return nil, exceptions.ErrStorageDecodeBlob(err, key)
	}
	return sessionData, nil
}

func (s *Service) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, constvars.RedisKeyPrefixSession+sessionID)
}
