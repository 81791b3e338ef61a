package contracts

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
	"mime/multipart"
)

type ProfileUsecase interface {
	Get(ctx context.Context) (*responses.Profile, error)
	Replace(ctx context.Context, request *requests.ReplaceProfile) (*responses.Profile, error)
	PatchField(ctx context.Context, request *requests.PatchProfileField) (*responses.Profile, error)
	UploadPhoto(ctx context.Context, fileHeader *multipart.FileHeader) (*responses.ProfilePhoto, error)
}

// ProfileStore persists the profile blob under a fixed key. Load returns a
// zero-value profile when the key is absent.
type ProfileStore interface {
	Load(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
}
