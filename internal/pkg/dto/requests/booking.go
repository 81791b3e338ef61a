package requests

// OpenBooking starts a booking session for a doctor.
type OpenBooking struct {
	DoctorID string `json:"doctor_id" validate:"required"`
}

// UpdateBooking sets any subset of the session fields. Absent fields keep
// their current value.
type UpdateBooking struct {
	SlotDate     *string `json:"slot_date"`
	SlotTime     *string `json:"slot_time"`
	PatientName  *string `json:"patient_name"`
	PatientPhone *string `json:"patient_phone" validate:"omitempty,phone_number"`
}
