package models

// Session is the logged-in user state stored in Redis after OTP validation.
type Session struct {
	SessionID    string `json:"session_id"`
	MobileNumber string `json:"mobile_number"`
	Name         string `json:"name"`
}
