package constvars

// Success messages for clients
const (
	SearchDoctorsSuccessMessage      = "successfully fetched doctors"
	GetDoctorSuccessMessage          = "successfully fetched doctor detail"
	GetSlotsSuccessMessage           = "successfully fetched available slots"
	GetLocalitiesSuccessMessage      = "successfully fetched localities"
	GetMapViewSuccessMessage         = "successfully fetched map view"
	OpenBookingSuccessMessage        = "booking session started"
	UpdateBookingSuccessMessage      = "booking session updated"
	ConfirmBookingSuccessMessage     = "appointment booked"
	DismissBookingSuccessMessage     = "booking session dismissed"
	GetAppointmentsSuccessMessage    = "successfully fetched appointments"
	UpdateAppointmentSuccessMessage  = "appointment status updated"
	GetProfileSuccessMessage         = "successfully fetched profile"
	UpdateProfileSuccessMessage      = "profile updated"
	UploadProfilePhotoSuccessMessage = "profile photo uploaded"
	RequestOTPSuccessMessage         = "OTP sent"
	ValidateOTPSuccessMessage        = "successfully logged in"
)
