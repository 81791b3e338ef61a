package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         contextKey = "sessionData"
)

// Storage keys for the key-value blobs. The appointment list and the profile
// live under single fixed keys, mirroring the client prototype this service
// replaces; writes are read-modify-write with last-write-wins semantics.
const (
	StorageKeyAppointments = "medifind:appointments"
	StorageKeyProfile      = "medifind:profile"

	RedisKeyPrefixBookingSession = "medifind:booking-session:"
	RedisKeyPrefixOTP            = "medifind:otp:"
	RedisKeyPrefixSession        = "medifind:session:"
)

// Appointment statuses. New bookings always start as Attending.
const (
	AppointmentStatusAttending   = "Attending"
	AppointmentStatusAttended    = "Attended"
	AppointmentStatusAttendLater = "Attend Later"
	AppointmentStatusMissed      = "Missed"
)

// Booking session states. There is no stored "idle" state: an absent session
// is idle, opening one enters selecting_slot.
const (
	BookingStateSelectingSlot = "selecting_slot"
	BookingStateConfirmed     = "confirmed"
)

const (
	// CityAliasBengaluru and CityAliasBangalore are interchangeable in search.
	CityAliasBengaluru = "bengaluru"
	CityAliasBangalore = "bangalore"
)

const (
	MongoCollectionDoctors = "doctors"
)

const (
	DefaultProviderType = "doctor"

	// Average road speed used for the travel-time estimate, in km/h. This is
	// a display heuristic, not a routing-engine output.
	TravelSpeedKmPerHour = 30

	EarthRadiusKm = 6371
)

const (
	OTPLength = 6

	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
