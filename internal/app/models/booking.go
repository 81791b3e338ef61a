package models

import "time"

// BookingSlot is the slot a patient picked while a booking session is open.
type BookingSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// BookingSession is the transient state between opening a doctor's booking
// panel and confirming the appointment. Sessions live in Redis with a TTL;
// an expired or deleted session means the flow is back at idle.
type BookingSession struct {
	ID           string       `json:"id"`
	DoctorID     string       `json:"doctor_id"`
	State        string       `json:"state"`
	Slot         *BookingSlot `json:"slot,omitempty"`
	PatientName  string       `json:"patient_name"`
	PatientPhone string       `json:"patient_phone"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ReadyToConfirm reports whether the confirm guard passes: a slot is chosen
// and both patient fields are non-empty.
func (s *BookingSession) ReadyToConfirm() bool {
	return s.Slot != nil && s.Slot.Date != "" && s.Slot.Time != "" &&
		s.PatientName != "" && s.PatientPhone != ""
}
