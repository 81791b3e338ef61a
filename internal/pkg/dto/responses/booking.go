package responses

import "medifind-service/internal/app/models"

type BookingSession struct {
	ID           string              `json:"id"`
	DoctorID     string              `json:"doctor_id"`
	State        string              `json:"state"`
	Slot         *models.BookingSlot `json:"slot,omitempty"`
	PatientName  string              `json:"patient_name,omitempty"`
	PatientPhone string              `json:"patient_phone,omitempty"`
}

type ConfirmBooking struct {
	Appointment models.Appointment `json:"appointment"`
}
