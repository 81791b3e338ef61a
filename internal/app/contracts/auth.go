package contracts

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RequestOTP(ctx context.Context, request *requests.RequestOTP) (*responses.RequestOTP, error)
	ValidateOTP(ctx context.Context, request *requests.ValidateOTP) (*responses.ValidateOTP, error)
	FindSessionByToken(ctx context.Context, token string) (*models.Session, error)
}
