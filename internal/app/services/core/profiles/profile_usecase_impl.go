package profiles

import (
	"context"
	"fmt"
	"medifind-service/internal/app/config"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
	"medifind-service/internal/pkg/exceptions"
	"medifind-service/internal/pkg/utils"
	"mime/multipart"

	"go.uber.org/zap"
)

type profileUsecase struct {
	ProfileStore   contracts.ProfileStore
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewProfileUsecase(
	profileStore contracts.ProfileStore,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		ProfileStore:   profileStore,
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *profileUsecase) Get(ctx context.Context) (*responses.Profile, error) {
	profile, err := uc.ProfileStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.Profile{
		Profile:           *profile,
		CompletionPercent: profile.CompletionPercent(),
	}, nil
}

// Replace overwrites the whole blob. Fields absent from the request come back
// blank, so clients send the full profile.
func (uc *profileUsecase) Replace(ctx context.Context, request *requests.ReplaceProfile) (*responses.Profile, error) {
	profile := request.Profile
	if err := uc.ProfileStore.Save(ctx, &profile); err != nil {
		return nil, err
	}
	return &responses.Profile{
		Profile:           profile,
		CompletionPercent: profile.CompletionPercent(),
	}, nil
}

func (uc *profileUsecase) PatchField(ctx context.Context, request *requests.PatchProfileField) (*responses.Profile, error) {
	profile, err := uc.ProfileStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !profile.SetField(request.Field, request.Value) {
		return nil, exceptions.ErrUnknownProfileField(fmt.Errorf("field %s", request.Field))
	}
	if err := uc.ProfileStore.Save(ctx, profile); err != nil {
		return nil, err
	}
	return &responses.Profile{
		Profile:           *profile,
		CompletionPercent: profile.CompletionPercent(),
	}, nil
}

func (uc *profileUsecase) UploadPhoto(ctx context.Context, fileHeader *multipart.FileHeader) (*responses.ProfilePhoto, error) {
	if err := utils.ValidateImageExtension(fileHeader.Filename, constvars.ImageAllowedProfilePictureFormats); err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(fileHeader.Size, uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB); err != nil {
		return nil, exceptions.ErrImageTooLarge(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	defer file.Close()

	// The object name is generated server-side so repeated uploads never
	// collide on the client-chosen filename.
	renamed := *fileHeader
	renamed.Filename = utils.GenerateFileName(constvars.ImageProfilePicturePrefix, "patient", utils.FileExtension(fileHeader.Filename))

	objectName, err := uc.Storage.UploadFile(ctx, file, &renamed, uc.InternalConfig.Minio.BucketName)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadPhoto done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.ProfilePhoto{ObjectName: objectName}, nil
}
