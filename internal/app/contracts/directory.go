package contracts

import (
	"context"
	"medifind-service/internal/pkg/directory_dto"
)

// DirectoryClient talks to the upstream clinic directory. Implementations
// return an error both on transport failures and on the upstream FAILURE
// sentinel; an empty slice with a nil error is a genuine empty result.
type DirectoryClient interface {
	GetClinicList(ctx context.Context, providerType, city, locality string) ([]directory_dto.ClinicSummary, error)
	GetClinicDetails(ctx context.Context, clinicID string) (*directory_dto.ClinicSummary, error)
	GetLocalities(ctx context.Context, city, searchTerm string) ([]directory_dto.Locality, error)
	GetBasicDetails(ctx context.Context, providerType, city, locality string, bounds directory_dto.Bounds) ([]directory_dto.BasicDetails, error)
	GetClinicSlots(ctx context.Context, clinicID string) ([]directory_dto.SlotGroup, error)
	RequestAppointment(ctx context.Context, request *directory_dto.AppointmentRequest) error
}
