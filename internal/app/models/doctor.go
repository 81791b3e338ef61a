package models

// Doctor is a provider directory entry. Entries come from three places with
// the same shape: the upstream directory, the Mongo collection seeded by
// cmd/seed, and the embedded fallback dataset.
type Doctor struct {
	ID           string        `json:"id" bson:"_id"`
	Name         string        `json:"name" bson:"name"`
	Specialty    string        `json:"specialty" bson:"specialty"`
	Experience   string        `json:"experience" bson:"experience"`
	Location     string        `json:"location" bson:"location"`
	Clinic       string        `json:"clinic" bson:"clinic"`
	Fee          string        `json:"fee" bson:"fee"`
	Availability string        `json:"availability" bson:"availability"`
	Image        string        `json:"image" bson:"image"`
	Latitude     float64       `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude    float64       `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Slots        []DaySchedule `json:"slots" bson:"slots"`
}

// DaySchedule groups bookable times under a display date label such as
// "Today" or "Tomorrow".
type DaySchedule struct {
	Date  string   `json:"date" bson:"date"`
	Times []string `json:"times" bson:"times"`
}
