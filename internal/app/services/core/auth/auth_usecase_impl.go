package auth

import (
	"context"
	"fmt"
	"medifind-service/internal/app/config"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/app/services/shared/session"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
	"medifind-service/internal/pkg/exceptions"
	"medifind-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// otpRecord is the blob stored under the OTP key until the code is validated.
// The name rides along so the session can carry it after validation.
type otpRecord struct {
	OTP  string `json:"otp"`
	Name string `json:"name"`
}

type authUsecase struct {
	RedisRepository contracts.RedisRepository
	SessionService  *session.Service
	Notifier        contracts.Notifier
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	redisRepository contracts.RedisRepository,
	sessionService *session.Service,
	notifier contracts.Notifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		Notifier:        notifier,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// RequestOTP issues a fresh code for the number and hands it to the broker
// for delivery. A repeated request overwrites the previous code.
func (uc *authUsecase) RequestOTP(ctx context.Context, request *requests.RequestOTP) (*responses.RequestOTP, error) {
	mobileNumber := utils.NormalizePhoneDigits(request.MobileNumber)
	if err := utils.ValidateInternationalPhoneDigits(mobileNumber); err != nil {
		return nil, exceptions.ErrInvalidPhoneNumber(err)
	}

	otp, err := utils.GenerateOTP(constvars.OTPLength)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	ttl := time.Duration(uc.InternalConfig.App.OTPExpiredTimeInMinutes) * time.Minute
	key := constvars.RedisKeyPrefixOTP + mobileNumber
	if err := uc.RedisRepository.Set(ctx, key, &otpRecord{OTP: otp, Name: request.Name}, ttl); err != nil {
		return nil, err
	}

	if err := uc.Notifier.PublishOTPRequested(ctx, map[string]interface{}{
		"mobile_number": mobileNumber,
		"otp":           otp,
		"device_id":     request.DeviceID,
	}); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RequestOTP done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileNumberKey, mobileNumber),
	)

	return &responses.RequestOTP{
		MobileNumber: mobileNumber,
		ExpiresInSec: uc.InternalConfig.App.OTPExpiredTimeInMinutes * 60,
	}, nil
}

// ValidateOTP exchanges a valid code for a session token. The code is single
// use; it is deleted before the session is created.
func (uc *authUsecase) ValidateOTP(ctx context.Context, request *requests.ValidateOTP) (*responses.ValidateOTP, error) {
	mobileNumber := utils.NormalizePhoneDigits(request.MobileNumber)
	key := constvars.RedisKeyPrefixOTP + mobileNumber

	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrOTPExpired(fmt.Errorf("no OTP stored for %s", mobileNumber))
	}

	record := new(otpRecord)
	if err := json.Unmarshal([]byte(raw), record); err != nil {
		return nil, exceptions.ErrStorageDecodeBlob(err, key)
	}
	if record.OTP != request.OTP {
		return nil, exceptions.ErrOTPInvalid(fmt.Errorf("OTP mismatch for %s", mobileNumber))
	}

	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		return nil, err
	}

	sessionData := &models.Session{
		SessionID:    uuid.NewString(),
		MobileNumber: mobileNumber,
		Name:         record.Name,
	}
	sessionTTL := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	if err := uc.SessionService.Create(ctx, sessionData, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionData.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ValidateOTP done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileNumberKey, mobileNumber),
	)

	return &responses.ValidateOTP{Token: token}, nil
}

// FindSessionByToken resolves a bearer token back to its stored session.
func (uc *authUsecase) FindSessionByToken(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return uc.SessionService.FindByID(ctx, sessionID)
}
