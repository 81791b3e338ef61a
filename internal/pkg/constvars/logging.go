package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingBookingIDKey    = "booking_id"
	LoggingAppointmentKey  = "appointment_id"
	LoggingCityKey         = "city"
	LoggingSpecialtyKey    = "specialty"
	LoggingAreaKey         = "area"
	LoggingUpstreamURLKey  = "upstream_url"
	LoggingResultCountKey  = "result_count"
	LoggingFallbackKey     = "fallback_source"
	LoggingStorageKeyKey   = "storage_key"
	LoggingObjectNameKey   = "object_name"
	LoggingQueueKey        = "queue"
	LoggingMobileNumberKey = "mobile_number"
)
