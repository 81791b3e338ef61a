package responses

// DoctorResult is a directory entry enriched with distance data when the
// caller supplied coordinates.
type DoctorResult struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Specialty    string     `json:"specialty"`
	Experience   string     `json:"experience"`
	Location     string     `json:"location"`
	Clinic       string     `json:"clinic"`
	Fee          string     `json:"fee"`
	Availability string     `json:"availability"`
	Image        string     `json:"image"`
	DistanceKm   *float64   `json:"distance_km,omitempty"`
	TravelMins   *int       `json:"travel_mins,omitempty"`
	Slots        []DaySlots `json:"slots"`
}

type DaySlots struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// SearchDoctors wraps the result list with the source it came from, one of
// "upstream", "directory" or "embedded".
type SearchDoctors struct {
	Source  string         `json:"source"`
	Doctors []DoctorResult `json:"doctors"`
}

type LocalityResult struct {
	Locality string `json:"locality"`
}

// MapView is the answer to a map query: a center to pan to and the labeled
// pins inside the viewport around it.
type MapView struct {
	Center  MapPoint    `json:"center"`
	Markers []MapMarker `json:"markers"`
}

type MapPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MapMarker struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Icon     string  `json:"icon"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Verified bool    `json:"verified"`
}
