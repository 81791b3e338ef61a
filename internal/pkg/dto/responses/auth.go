package responses

type RequestOTP struct {
	MobileNumber string `json:"mobile_number"`
	ExpiresInSec int    `json:"expires_in_sec"`
}

type ValidateOTP struct {
	Token string `json:"token"`
}
