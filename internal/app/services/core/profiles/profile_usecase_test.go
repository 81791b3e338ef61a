package profiles

import (
	"context"
	"errors"
	"io"
	"medifind-service/internal/app/config"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryProfileStore struct {
	profile *models.Profile
	loadErr error
}

func (s *memoryProfileStore) Load(ctx context.Context) (*models.Profile, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.profile == nil {
		return &models.Profile{}, nil
	}
	copied := *s.profile
	return &copied, nil
}

func (s *memoryProfileStore) Save(ctx context.Context, profile *models.Profile) error {
	copied := *profile
	s.profile = &copied
	return nil
}

type recordingStorage struct {
	objectNames []string
	uploadErr   error
}

func (s *recordingStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.objectNames = append(s.objectNames, fileHeader.Filename)
	return fileHeader.Filename, nil
}

func newProfileUsecase(store contracts.ProfileStore, storage contracts.Storage) contracts.ProfileUsecase {
	cfg := &config.InternalConfig{}
	cfg.Minio.BucketName = "medifind-profile-photos"
	cfg.Minio.ProfilePictureMaxUploadSizeInMB = 2
	return NewProfileUsecase(store, storage, cfg, zap.NewNop())
}

func TestGetProfileCompletion(t *testing.T) {
	t.Run("Empty profile is zero percent", func(t *testing.T) {
		uc := newProfileUsecase(&memoryProfileStore{}, &recordingStorage{})

		result, err := uc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.CompletionPercent)
	})

	t.Run("One of twenty-two fields rounds to five percent", func(t *testing.T) {
		store := &memoryProfileStore{profile: &models.Profile{UserName: "Harsha M"}}
		uc := newProfileUsecase(store, &recordingStorage{})

		result, err := uc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, result.CompletionPercent)
	})

	t.Run("Half filled is fifty percent", func(t *testing.T) {
		store := &memoryProfileStore{profile: &models.Profile{
			UserName: "Harsha M", ContactNumber: "918277634896", Email: "harsha@example.com",
			Gender: "Male", DOB: "1992-04-18", BloodGroup: "B+", MaritalStatus: "Single",
			Height: "176", Weight: "72", EmergencyContact: "919845012345", Location: "Jayanagar, Bangalore",
		}}
		uc := newProfileUsecase(store, &recordingStorage{})

		result, err := uc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 50, result.CompletionPercent)
	})

	t.Run("Whitespace-only values do not count as filled", func(t *testing.T) {
		store := &memoryProfileStore{profile: &models.Profile{UserName: "   ", Email: "\t"}}
		uc := newProfileUsecase(store, &recordingStorage{})

		result, err := uc.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.CompletionPercent)
	})
}

func TestReplaceProfile(t *testing.T) {
	store := &memoryProfileStore{profile: &models.Profile{UserName: "Old Name", Email: "old@example.com"}}
	uc := newProfileUsecase(store, &recordingStorage{})

	result, err := uc.Replace(context.Background(), &requests.ReplaceProfile{
		Profile: models.Profile{UserName: "Harsha M"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Harsha M", result.Profile.UserName)
	assert.Empty(t, result.Profile.Email)
	assert.Empty(t, store.profile.Email)
}

func TestPatchProfileField(t *testing.T) {
	t.Run("Known field persists and recounts", func(t *testing.T) {
		store := &memoryProfileStore{}
		uc := newProfileUsecase(store, &recordingStorage{})

		result, err := uc.PatchField(context.Background(), &requests.PatchProfileField{Field: "blood_group", Value: "B+"})
		require.NoError(t, err)
		assert.Equal(t, "B+", result.Profile.BloodGroup)
		assert.Equal(t, "B+", store.profile.BloodGroup)
		assert.Equal(t, 5, result.CompletionPercent)
	})

	t.Run("Unknown field is rejected without a write", func(t *testing.T) {
		store := &memoryProfileStore{}
		uc := newProfileUsecase(store, &recordingStorage{})

		_, err := uc.PatchField(context.Background(), &requests.PatchProfileField{Field: "favourite_colour", Value: "green"})
		assert.Error(t, err)
		assert.Nil(t, store.profile)
	})
}

func TestUploadPhoto(t *testing.T) {
	t.Run("Unsupported extension is rejected", func(t *testing.T) {
		storage := &recordingStorage{}
		uc := newProfileUsecase(&memoryProfileStore{}, storage)

		_, err := uc.UploadPhoto(context.Background(), &multipart.FileHeader{Filename: "photo.gif", Size: 1024})
		assert.Error(t, err)
		assert.Empty(t, storage.objectNames)
	})

	t.Run("Oversized file is rejected", func(t *testing.T) {
		storage := &recordingStorage{}
		uc := newProfileUsecase(&memoryProfileStore{}, storage)

		_, err := uc.UploadPhoto(context.Background(), &multipart.FileHeader{Filename: "photo.png", Size: 3 * 1024 * 1024})
		assert.Error(t, err)
		assert.Empty(t, storage.objectNames)
	})
}

func TestGetProfileStoreError(t *testing.T) {
	uc := newProfileUsecase(&memoryProfileStore{loadErr: errors.New("redis down")}, &recordingStorage{})

	_, err := uc.Get(context.Background())
	assert.Error(t, err)
}
