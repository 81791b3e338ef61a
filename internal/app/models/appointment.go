package models

import "time"

// Appointment is one entry of the appointment list blob. The whole list lives
// under a single storage key and is rewritten on every mutation.
type Appointment struct {
	ID           string    `json:"id"`
	DoctorID     string    `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	Specialty    string    `json:"specialty"`
	Clinic       string    `json:"clinic"`
	Location     string    `json:"location"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	PatientName  string    `json:"patient_name"`
	PatientPhone string    `json:"patient_phone"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
