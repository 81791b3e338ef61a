package contracts

import (
	"context"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	Search(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error)
	FindByID(ctx context.Context, doctorID string) (*responses.DoctorResult, error)
	FindSlotsByID(ctx context.Context, doctorID string) ([]responses.DaySlots, error)
	FindLocalities(ctx context.Context, request *requests.GetLocalities) ([]responses.LocalityResult, error)
	FindMapView(ctx context.Context, request *requests.GetMapView) (*responses.MapView, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpsertMany(ctx context.Context, doctors []models.Doctor) error
}
