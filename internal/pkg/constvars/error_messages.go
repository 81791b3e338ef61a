package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"latitude":     "must be a valid latitude",
	"longitude":    "must be a valid longitude",
	"phone_number": "must be a valid phone number with country code",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientDoctorNotFound                = "we couldn't find that doctor"
	ErrClientAppointmentNotFound           = "we couldn't find that appointment"
	ErrClientBookingNotFound               = "this booking is no longer active"
	ErrClientBookingIncomplete             = "pick a time slot and fill in the patient details first"
	ErrClientSlotNotOffered                = "that time slot is not available for this doctor"
	ErrClientBookingAlreadyConfirmed       = "this booking is already confirmed"
	ErrClientInvalidAppointmentStatus      = "that appointment status is not recognized"
	ErrClientInvalidPhoneNumber            = "enter a valid phone number with country code"
	ErrClientOTPExpired                    = "your OTP expired, please request a new one"
	ErrClientOTPInvalid                    = "that OTP is not correct"
	ErrClientCouldNotSaveData              = "we couldn't save your data, please try again"
	ErrClientInvalidImageFormat            = "that image format is not supported"
	ErrClientImageTooLarge                 = "that image is too large"
	ErrClientUnknownProfileField           = "that profile field does not exist"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form body"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "failed processing request"
	ErrDevURLParamIDValidationFailed = "invalid URL param %s"

	// Auth messages
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthOTPExpired            = "OTP expired or never requested"
	ErrDevAuthOTPInvalid            = "OTP does not match"
	ErrDevAuthInvalidSession        = "invalid session"

	// Domain messages
	ErrDevDoctorNotFound           = "doctor not found"
	ErrDevAppointmentNotFound      = "appointment not found by id"
	ErrDevBookingSessionNotFound   = "booking session not found or expired"
	ErrDevBookingIncomplete        = "booking confirm guard: missing slot or patient fields"
	ErrDevSlotNotOffered           = "booking confirm guard: slot not in doctor's schedule"
	ErrDevBookingAlreadyConfirmed  = "booking session already confirmed"
	ErrDevInvalidAppointmentStatus = "appointment status outside allowed set"
	ErrDevUnknownProfileField      = "profile field name not in schema"

	// Mongo messages
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from cursor"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Key-value blob messages
	ErrDevStorageDecodeBlob = "failed to decode stored JSON blob for key %s"
	ErrDevStorageWriteBlob  = "failed to write JSON blob for key %s"

	// Upstream directory messages
	ErrDevUpstreamUnavailable     = "upstream directory request failed for %s"
	ErrDevUpstreamFailureSentinel = "upstream directory answered FAILURE for %s"
	ErrDevUpstreamDecodeResponse  = "failed to decode upstream directory response for %s"

	// MinIO messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)
