package doctors

import (
	"context"
	"errors"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/directory_dto"
	"medifind-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDirectoryClient struct {
	clinics    []directory_dto.ClinicSummary
	detail     *directory_dto.ClinicSummary
	localities []directory_dto.Locality
	slots      []directory_dto.SlotGroup
	err        error
}

func (s *stubDirectoryClient) GetClinicList(ctx context.Context, providerType, city, locality string) ([]directory_dto.ClinicSummary, error) {
	return s.clinics, s.err
}

func (s *stubDirectoryClient) GetClinicDetails(ctx context.Context, clinicID string) (*directory_dto.ClinicSummary, error) {
	if s.detail != nil && s.detail.ID == clinicID {
		return s.detail, nil
	}
	return nil, s.err
}

func (s *stubDirectoryClient) GetLocalities(ctx context.Context, city, searchTerm string) ([]directory_dto.Locality, error) {
	return s.localities, s.err
}

func (s *stubDirectoryClient) GetBasicDetails(ctx context.Context, providerType, city, locality string, bounds directory_dto.Bounds) ([]directory_dto.BasicDetails, error) {
	return nil, s.err
}

func (s *stubDirectoryClient) GetClinicSlots(ctx context.Context, clinicID string) ([]directory_dto.SlotGroup, error) {
	return s.slots, s.err
}

func (s *stubDirectoryClient) RequestAppointment(ctx context.Context, request *directory_dto.AppointmentRequest) error {
	return s.err
}

type stubDoctorRepository struct {
	docs []models.Doctor
	err  error
}

func (s *stubDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return s.docs, s.err
}

func (s *stubDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for i := range s.docs {
		if s.docs[i].ID == doctorID {
			return &s.docs[i], nil
		}
	}
	return nil, s.err
}

func (s *stubDoctorRepository) UpsertMany(ctx context.Context, docs []models.Doctor) error {
	return s.err
}

func newTestUsecase(client *stubDirectoryClient, repo *stubDoctorRepository) *doctorUsecase {
	return &doctorUsecase{
		DirectoryClient:  client,
		DoctorRepository: repo,
		Log:              zap.NewNop(),
	}
}

func TestSearchFallbackChain(t *testing.T) {
	ctx := context.Background()

	t.Run("Upstream results win when available", func(t *testing.T) {
		uc := newTestUsecase(&stubDirectoryClient{
			clinics: []directory_dto.ClinicSummary{
				{ID: "u1", Name: "Upstream Clinic", City: "Hyderabad", Locality: "Jubilee Hills", Specializations: "Dentist", Lat: "17.43", Lng: "78.40"},
			},
		}, &stubDoctorRepository{})

		result, err := uc.Search(ctx, &requests.SearchDoctors{City: "Hyderabad"})
		require.NoError(t, err)
		assert.Equal(t, SourceUpstream, result.Source)
		require.Len(t, result.Doctors, 1)
		assert.Equal(t, "u1", result.Doctors[0].ID)
	})

	t.Run("Upstream failure falls back to directory", func(t *testing.T) {
		uc := newTestUsecase(
			&stubDirectoryClient{err: errors.New("connection refused")},
			&stubDoctorRepository{docs: []models.Doctor{
				{ID: "m1", Name: "Stored Doctor", Specialty: "Dentist", Location: "Jubilee Hills, Hyderabad"},
			}},
		)

		result, err := uc.Search(ctx, &requests.SearchDoctors{City: "Hyderabad"})
		require.NoError(t, err)
		assert.Equal(t, SourceDirectory, result.Source)
		require.Len(t, result.Doctors, 1)
		assert.Equal(t, "m1", result.Doctors[0].ID)
	})

	t.Run("Empty upstream and directory fall back to embedded", func(t *testing.T) {
		uc := newTestUsecase(&stubDirectoryClient{}, &stubDoctorRepository{})

		result, err := uc.Search(ctx, &requests.SearchDoctors{City: "Hyderabad", Specialty: "Dentist"})
		require.NoError(t, err)
		assert.Equal(t, SourceEmbedded, result.Source)
		require.Len(t, result.Doctors, 1)
		assert.Equal(t, "1", result.Doctors[0].ID)
		assert.Equal(t, "Dr. Anjali Desai", result.Doctors[0].Name)
	})
}

func TestSearchDistanceDecoration(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(&stubDirectoryClient{err: errors.New("down")}, &stubDoctorRepository{})

	t.Run("Coordinates produce distance and ETA", func(t *testing.T) {
		lat, lng := 12.9716, 77.5946
		result, err := uc.Search(ctx, &requests.SearchDoctors{City: "Bangalore", Latitude: &lat, Longitude: &lng})
		require.NoError(t, err)
		require.NotEmpty(t, result.Doctors)
		for _, doc := range result.Doctors {
			require.NotNil(t, doc.DistanceKm)
			require.NotNil(t, doc.TravelMins)
			assert.GreaterOrEqual(t, *doc.DistanceKm, 0.0)
		}
	})

	t.Run("No coordinates means no decoration", func(t *testing.T) {
		result, err := uc.Search(ctx, &requests.SearchDoctors{City: "Bangalore"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Doctors)
		assert.Nil(t, result.Doctors[0].DistanceKm)
		assert.Nil(t, result.Doctors[0].TravelMins)
	})
}

func TestFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Embedded dataset answers when directory is empty", func(t *testing.T) {
		uc := newTestUsecase(&stubDirectoryClient{}, &stubDoctorRepository{})
		result, err := uc.FindByID(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Siddalinga Swamy", result.Name)
		assert.Equal(t, "Urologist", result.Specialty)
	})

	t.Run("Unknown id is not found", func(t *testing.T) {
		uc := newTestUsecase(&stubDirectoryClient{}, &stubDoctorRepository{})
		_, err := uc.FindByID(ctx, "999")
		assert.Error(t, err)
	})

	t.Run("Upstream search hit resolves by id", func(t *testing.T) {
		clinic := directory_dto.ClinicSummary{
			ID: "u42", Name: "Remote Clinic", City: "Hyderabad",
			Locality: "Gachibowli", Specializations: "Dentist",
			Lat: "17.44", Lng: "78.35",
		}
		uc := newTestUsecase(&stubDirectoryClient{
			clinics: []directory_dto.ClinicSummary{clinic},
			detail:  &clinic,
		}, &stubDoctorRepository{err: errors.New("mongo down")})

		search, err := uc.Search(ctx, &requests.SearchDoctors{City: "Hyderabad"})
		require.NoError(t, err)
		require.Len(t, search.Doctors, 1)
		require.Equal(t, "u42", search.Doctors[0].ID)

		result, err := uc.FindByID(ctx, "u42")
		require.NoError(t, err)
		assert.Equal(t, "Remote Clinic", result.Name)
		assert.Equal(t, "Dentist", result.Specialty)
	})
}

func TestFindSlotsByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Upstream slots preferred", func(t *testing.T) {
		uc := newTestUsecase(&stubDirectoryClient{
			slots: []directory_dto.SlotGroup{
				{Period: "Morning", Slots: []directory_dto.Slot{{Time: "10:00"}, {Time: "10:30"}}},
			},
		}, &stubDoctorRepository{})

		slots, err := uc.FindSlotsByID(ctx, "1")
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "Morning", slots[0].Date)
		assert.Equal(t, []string{"10:00", "10:30"}, slots[0].Times)
	})

	t.Run("Stored schedule on upstream failure", func(t *testing.T) {
		uc := newTestUsecase(&stubDirectoryClient{err: errors.New("down")}, &stubDoctorRepository{})

		slots, err := uc.FindSlotsByID(ctx, "5")
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "Today", slots[0].Date)
		assert.Contains(t, slots[0].Times, "10:00 AM")
	})
}

func TestFindLocalitiesFallback(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(&stubDirectoryClient{err: errors.New("down")}, &stubDoctorRepository{})

	localities, err := uc.FindLocalities(ctx, &requests.GetLocalities{City: "Bangalore", SearchTerm: "ja"})
	require.NoError(t, err)
	require.Len(t, localities, 1)
	assert.Equal(t, "Jayanagar", localities[0].Locality)
}
