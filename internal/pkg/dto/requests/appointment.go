package requests

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=Attending Attended 'Attend Later' Missed"`
}
