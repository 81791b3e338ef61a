package requests

type RequestOTP struct {
	MobileNumber string `json:"mobile_number" validate:"required,phone_number"`
	Name         string `json:"name"`
	DeviceID     string `json:"device_id"`
}

type ValidateOTP struct {
	MobileNumber string `json:"mobile_number" validate:"required,phone_number"`
	OTP          string `json:"otp" validate:"required,len=6,numeric"`
}
