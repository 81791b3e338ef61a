package profiles

import (
	"context"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// profileStore keeps the single patient profile as one JSON blob under a
// fixed key. An absent key reads back as an all-empty profile.
type profileStore struct {
	RedisRepository contracts.RedisRepository
}

func NewProfileStore(redisRepository contracts.RedisRepository) contracts.ProfileStore {
	return &profileStore{RedisRepository: redisRepository}
}

func (s *profileStore) Load(ctx context.Context) (*models.Profile, error) {
	raw, err := s.RedisRepository.Get(ctx, constvars.StorageKeyProfile)
	if err != nil {
		return nil, err
	}

	profile := new(models.Profile)
	if raw == "" {
		return profile, nil
	}
	if err := json.Unmarshal([]byte(raw), profile); err != nil {
		return nil, exceptions.ErrStorageDecodeBlob(err, constvars.StorageKeyProfile)
	}
	return profile, nil
}

func (s *profileStore) Save(ctx context.Context, profile *models.Profile) error {
	// No TTL: the profile lives until overwritten.
	if err := s.RedisRepository.Set(ctx, constvars.StorageKeyProfile, profile, 0); err != nil {
		return exceptions.ErrStorageWriteBlob(err, constvars.StorageKeyProfile)
	}
	return nil
}
