package directory

import (
	"bytes"
	"context"
	"fmt"
	"medifind-service/internal/app/contracts"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/directory_dto"
	"medifind-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	directoryClientInstance contracts.DirectoryClient
	onceDirectoryClient     sync.Once
)

type directoryClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewDirectoryClient builds the upstream directory facade. The limiter keeps
// the service within the upstream's informal request budget; requests block
// on it until the context is done.
func NewDirectoryClient(baseUrl string, requestTimeout time.Duration, maxRequestsPerSecond float64, logger *zap.Logger) contracts.DirectoryClient {
	onceDirectoryClient.Do(func() {
		client := &directoryClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: requestTimeout},
			Limiter:    rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1),
			Log:        logger,
		}
		directoryClientInstance = client
	})
	return directoryClientInstance
}

func (c *directoryClient) GetClinicList(ctx context.Context, providerType, city, locality string) ([]directory_dto.ClinicSummary, error) {
	const operation = "get_clinic_list"
	envelope, err := c.post(ctx, "/v1/map/get_clinic_list", operation, &directory_dto.ClinicListRequest{
		Type: providerType,
		City: city,
		Loc:  locality,
	})
	if err != nil {
		return nil, err
	}
	return envelope.ClinicList, nil
}

func (c *directoryClient) GetClinicDetails(ctx context.Context, clinicID string) (*directory_dto.ClinicSummary, error) {
	const operation = "get_details"
	envelope, err := c.post(ctx, "/v1/map/get_details", operation, &directory_dto.ClinicDetailsRequest{
		ID: clinicID,
	})
	if err != nil {
		return nil, err
	}
	return envelope.ClinicDetails, nil
}

func (c *directoryClient) GetLocalities(ctx context.Context, city, searchTerm string) ([]directory_dto.Locality, error) {
	const operation = "get_localities"
	body, err := c.postRaw(ctx, "/v1/autocomplete/get_localities", operation, &directory_dto.LocalitiesRequest{
		City:       city,
		SearchTerm: searchTerm,
	})
	if err != nil {
		return nil, err
	}

	// This endpoint answers a bare array instead of the envelope.
	var localities []directory_dto.Locality
	if err := json.Unmarshal(body, &localities); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, operation)
	}
	return localities, nil
}

func (c *directoryClient) GetBasicDetails(ctx context.Context, providerType, city, locality string, bounds directory_dto.Bounds) ([]directory_dto.BasicDetails, error) {
	const operation = "get_basic_details"
	envelope, err := c.post(ctx, "/v1/map/get_basic_details", operation, &directory_dto.BasicDetailsRequest{
		Type:     providerType,
		City:     city,
		Locality: locality,
		Lat1:     strconv.FormatFloat(bounds.South, 'f', -1, 64),
		Lat2:     strconv.FormatFloat(bounds.West, 'f', -1, 64),
		Lng1:     strconv.FormatFloat(bounds.North, 'f', -1, 64),
		Lng2:     strconv.FormatFloat(bounds.East, 'f', -1, 64),
	})
	if err != nil {
		return nil, err
	}
	return envelope.MapBasicDetails, nil
}

func (c *directoryClient) GetClinicSlots(ctx context.Context, clinicID string) ([]directory_dto.SlotGroup, error) {
	const operation = "get_clinic_slots"
	envelope, err := c.post(ctx, "/v1/verified/get_clinic_slots", operation, &directory_dto.ClinicSlotsRequest{
		ID: clinicID,
	})
	if err != nil {
		return nil, err
	}
	return envelope.SlotGroups, nil
}

func (c *directoryClient) RequestAppointment(ctx context.Context, request *directory_dto.AppointmentRequest) error {
	const operation = "request_appointment"
	_, err := c.post(ctx, "/v1/verified/request_appointment", operation, request)
	return err
}

// post sends a JSON body and decodes the standard envelope, turning the
// FAILURE sentinel into an error.
func (c *directoryClient) post(ctx context.Context, path, operation string, payload interface{}) (*directory_dto.Envelope, error) {
	body, err := c.postRaw(ctx, path, operation, payload)
	if err != nil {
		return nil, err
	}

	envelope := new(directory_dto.Envelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, operation)
	}
	if envelope.Response == directory_dto.ResponseFailure {
		return nil, exceptions.ErrUpstreamFailureSentinel(fmt.Errorf("upstream message: %s", envelope.Message), operation)
	}
	return envelope, nil
}

func (c *directoryClient) postRaw(ctx context.Context, path, operation string, payload interface{}) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + path

	c.Log.Info("directoryClient request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamURLKey, url),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrUpstreamUnavailable(err, operation)
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		c.Log.Error("directoryClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	// The upstream rejects application/json bodies on these endpoints.
	req.Header.Set(constvars.HeaderContentType, constvars.MIMETextPlain)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("directoryClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrUpstreamUnavailable(err, operation)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		statusErr := fmt.Errorf("unexpected upstream status %d", resp.StatusCode)
		c.Log.Error("directoryClient unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, url),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrUpstreamUnavailable(statusErr, operation)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, operation)
	}
	return buf.Bytes(), nil
}
