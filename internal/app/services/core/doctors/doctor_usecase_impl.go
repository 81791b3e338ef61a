package doctors

import (
	"context"
	"fmt"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/directory_dto"
	"medifind-service/internal/pkg/dto/requests"
	"medifind-service/internal/pkg/dto/responses"
	"medifind-service/internal/pkg/exceptions"
	"medifind-service/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Result sources, in fallback order.
const (
	SourceUpstream  = "upstream"
	SourceDirectory = "directory"
	SourceEmbedded  = "embedded"
)

type doctorUsecase struct {
	DirectoryClient  contracts.DirectoryClient
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(
	directoryClient contracts.DirectoryClient,
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DirectoryClient:  directoryClient,
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

// Search resolves the provider list through the fallback chain upstream →
// Mongo directory → embedded dataset, applies the filters, and decorates hits
// with distance/ETA when the caller sent coordinates.
func (uc *doctorUsecase) Search(ctx context.Context, request *requests.SearchDoctors) (*responses.SearchDoctors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	docs, source := uc.resolveDoctors(ctx, request.City, request.Specialty, request.Area)
	filtered := Filter(docs, Criteria{
		City:      request.City,
		Specialty: request.Specialty,
		Area:      request.Area,
		Query:     request.Query,
	})

	results := make([]responses.DoctorResult, len(filtered))
	for i := range filtered {
		results[i] = buildDoctorResult(&filtered[i], request.Latitude, request.Longitude)
	}

	uc.Log.Info("doctorUsecase.Search done",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFallbackKey, source),
		zap.Int(constvars.LoggingResultCountKey, len(results)),
	)

	return &responses.SearchDoctors{Source: source, Doctors: results}, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.DoctorResult, error) {
	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	result := buildDoctorResult(doctor, nil, nil)
	return &result, nil
}

// FindSlotsByID prefers the live upstream slot listing and falls back to the
// doctor's stored day schedule.
func (uc *doctorUsecase) FindSlotsByID(ctx context.Context, doctorID string) ([]responses.DaySlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	groups, err := uc.DirectoryClient.GetClinicSlots(ctx, doctorID)
	if err == nil && len(groups) > 0 {
		slots := make([]responses.DaySlots, len(groups))
		for i, group := range groups {
			times := make([]string, len(group.Slots))
			for j, slot := range group.Slots {
				times[j] = slot.Time
			}
			slots[i] = responses.DaySlots{Date: group.Period, Times: times}
		}
		return slots, nil
	}
	if err != nil {
		uc.Log.Warn("doctorUsecase.FindSlotsByID upstream unavailable, using stored schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	slots := make([]responses.DaySlots, len(doctor.Slots))
	for i, day := range doctor.Slots {
		slots[i] = responses.DaySlots{Date: day.Date, Times: day.Times}
	}
	return slots, nil
}

func (uc *doctorUsecase) FindLocalities(ctx context.Context, request *requests.GetLocalities) ([]responses.LocalityResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	upstream, err := uc.DirectoryClient.GetLocalities(ctx, request.City, request.SearchTerm)
	if err == nil && len(upstream) > 0 {
		results := make([]responses.LocalityResult, len(upstream))
		for i, locality := range upstream {
			results[i] = responses.LocalityResult{Locality: locality.Locality}
		}
		return results, nil
	}
	if err != nil {
		uc.Log.Warn("doctorUsecase.FindLocalities upstream unavailable, deriving from directory",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCityKey, request.City),
			zap.Error(err),
		)
	}

	docs, _ := uc.resolveDoctors(ctx, request.City, "", "")
	matched := Filter(docs, Criteria{City: request.City})

	seen := make(map[string]bool)
	results := make([]responses.LocalityResult, 0, len(matched))
	needle := strings.ToLower(request.SearchTerm)
	for _, doc := range matched {
		locality := localityOf(doc.Location)
		if locality == "" || seen[locality] {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(locality), needle) {
			continue
		}
		seen[locality] = true
		results = append(results, responses.LocalityResult{Locality: locality})
	}
	return results, nil
}

// FindMapView pans the map to the centroid of matching providers and fills
// the surrounding viewport with labeled pins.
func (uc *doctorUsecase) FindMapView(ctx context.Context, request *requests.GetMapView) (*responses.MapView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	docs, _ := uc.resolveDoctors(ctx, request.City, request.Specialty, request.Area)
	matched := Filter(docs, Criteria{City: request.City, Specialty: request.Specialty, Area: request.Area})

	center, ok := centroid(matched)
	if !ok {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("no providers with coordinates for city %s", request.City))
	}

	// Half a degree viewport around the centroid, roughly city scale.
	bounds := directory_dto.Bounds{
		South: center.Lat - 0.25,
		West:  center.Lng - 0.25,
		North: center.Lat + 0.25,
		East:  center.Lng + 0.25,
	}

	details, err := uc.DirectoryClient.GetBasicDetails(ctx, providerType(request.Specialty), request.City, "", bounds)
	if err == nil && len(details) > 0 {
		markers := make([]responses.MapMarker, 0, len(details))
		for _, detail := range details {
			lat, latErr := strconv.ParseFloat(detail.Lat, 64)
			lng, lngErr := strconv.ParseFloat(detail.Lng, 64)
			if latErr != nil || lngErr != nil {
				continue
			}
			markers = append(markers, responses.MapMarker{
				ID:       detail.ID,
				Name:     detail.Name,
				City:     detail.City,
				Icon:     detail.Icon,
				Lat:      lat,
				Lng:      lng,
				Verified: detail.Verified == "1",
			})
		}
		return &responses.MapView{Center: center, Markers: markers}, nil
	}
	if err != nil {
		uc.Log.Warn("doctorUsecase.FindMapView upstream unavailable, pinning directory entries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCityKey, request.City),
			zap.Error(err),
		)
	}

	markers := make([]responses.MapMarker, 0, len(matched))
	for _, doc := range matched {
		if doc.Latitude == 0 && doc.Longitude == 0 {
			continue
		}
		markers = append(markers, responses.MapMarker{
			ID:       doc.ID,
			Name:     doc.Name,
			City:     doc.Location,
			Icon:     doc.Image,
			Lat:      doc.Latitude,
			Lng:      doc.Longitude,
			Verified: true,
		})
	}
	return &responses.MapView{Center: center, Markers: markers}, nil
}

// resolveDoctors walks the fallback chain and reports which source answered.
func (uc *doctorUsecase) resolveDoctors(ctx context.Context, city, specialty, area string) ([]models.Doctor, string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	clinics, err := uc.DirectoryClient.GetClinicList(ctx, providerType(specialty), city, area)
	if err == nil && len(clinics) > 0 {
		docs := make([]models.Doctor, 0, len(clinics))
		for _, clinic := range clinics {
			docs = append(docs, clinicToDoctor(&clinic))
		}
		return docs, SourceUpstream
	}
	if err != nil {
		// Transport failures and the FAILURE sentinel both degrade to local
		// data; anything else is a fault in this service, not an outage.
		uc.logUpstreamDegrade(err, "doctorUsecase upstream directory unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCityKey, city),
			zap.Error(err),
		)
	}

	stored, err := uc.DoctorRepository.FindAll(ctx)
	if err == nil && len(stored) > 0 {
		return stored, SourceDirectory
	}
	if err != nil {
		uc.Log.Warn("doctorUsecase directory repository unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return EmbeddedDoctors, SourceEmbedded
}

// findDoctor resolves one provider through the same fallback chain as
// Search: upstream detail lookup, then the Mongo directory, then the
// embedded dataset. Upstream-sourced search hits stay bookable this way.
func (uc *doctorUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	clinic, err := uc.DirectoryClient.GetClinicDetails(ctx, doctorID)
	if err == nil && clinic != nil {
		doctor := clinicToDoctor(clinic)
		return &doctor, nil
	}
	if err != nil {
		uc.logUpstreamDegrade(err, "doctorUsecase upstream detail lookup failed, checking directory",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		uc.Log.Warn("doctorUsecase directory repository unavailable, checking embedded dataset",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
	if doctor != nil {
		return doctor, nil
	}

	for i := range EmbeddedDoctors {
		if EmbeddedDoctors[i].ID == doctorID {
			return &EmbeddedDoctors[i], nil
		}
	}
	return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s", doctorID))
}

// logUpstreamDegrade logs an upstream error at Warn when it is an expected
// outage (transport failure or FAILURE sentinel) and at Error otherwise.
func (uc *doctorUsecase) logUpstreamDegrade(err error, msg string, fields ...zap.Field) {
	if exceptions.IsUpstreamUnavailable(err) {
		uc.Log.Warn(msg, fields...)
		return
	}
	uc.Log.Error(msg, fields...)
}

func buildDoctorResult(doc *models.Doctor, userLat, userLng *float64) responses.DoctorResult {
	result := responses.DoctorResult{
		ID:           doc.ID,
		Name:         doc.Name,
		Specialty:    doc.Specialty,
		Experience:   doc.Experience,
		Location:     doc.Location,
		Clinic:       doc.Clinic,
		Fee:          doc.Fee,
		Availability: doc.Availability,
		Image:        doc.Image,
		Slots:        make([]responses.DaySlots, len(doc.Slots)),
	}
	for i, day := range doc.Slots {
		result.Slots[i] = responses.DaySlots{Date: day.Date, Times: day.Times}
	}

	if userLat != nil && userLng != nil && !(doc.Latitude == 0 && doc.Longitude == 0) {
		distance := utils.RoundDistanceKm(utils.HaversineKm(*userLat, *userLng, doc.Latitude, doc.Longitude))
		travel := utils.TravelMinutes(distance)
		result.DistanceKm = &distance
		result.TravelMins = &travel
	}
	return result
}

func clinicToDoctor(clinic *directory_dto.ClinicSummary) models.Doctor {
	lat, _ := strconv.ParseFloat(clinic.Lat, 64)
	lng, _ := strconv.ParseFloat(clinic.Lng, 64)
	return models.Doctor{
		ID:        clinic.ID,
		Name:      clinic.Name,
		Specialty: clinic.Specializations,
		Location:  joinNonEmpty(clinic.Locality, clinic.City),
		Clinic:    joinNonEmpty(clinic.Name, clinic.Address),
		Image:     clinic.Logo,
		Latitude:  lat,
		Longitude: lng,
	}
}

// providerType builds the upstream type discriminator, "doctor:<specialty>"
// or the bare provider kind.
func providerType(specialty string) string {
	if specialty == "" {
		return constvars.DefaultProviderType
	}
	if strings.Contains(specialty, ":") {
		return specialty
	}
	return constvars.DefaultProviderType + ":" + specialty
}

func localityOf(location string) string {
	parts := strings.SplitN(location, ",", 2)
	return strings.TrimSpace(parts[0])
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

func centroid(docs []models.Doctor) (responses.MapPoint, bool) {
	var sumLat, sumLng float64
	count := 0
	for _, doc := range docs {
		if doc.Latitude == 0 && doc.Longitude == 0 {
			continue
		}
		sumLat += doc.Latitude
		sumLng += doc.Longitude
		count++
	}
	if count == 0 {
		return responses.MapPoint{}, false
	}
	return responses.MapPoint{Lat: sumLat / float64(count), Lng: sumLng / float64(count)}, true
}
