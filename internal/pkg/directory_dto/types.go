// Package directory_dto holds the wire shapes of the upstream clinic
// directory. The upstream signals outcome in-band: a RESPONSE field set to
// SUCCESS or FAILURE inside an HTTP 200 body.
package directory_dto

const (
	ResponseSuccess = "SUCCESS"
	ResponseFailure = "FAILURE"
)

type Envelope struct {
	Response        string          `json:"RESPONSE"`
	Message         string          `json:"message,omitempty"`
	ClinicList      []ClinicSummary `json:"CLINIC_LIST,omitempty"`
	ClinicDetails   *ClinicSummary  `json:"CLINIC_DETAILS,omitempty"`
	MapBasicDetails []BasicDetails  `json:"MAP_BASIC_DETAILS,omitempty"`
	SlotGroups      []SlotGroup     `json:"CLINIC_SLOTS,omitempty"`
}

type Locality struct {
	Locality string `json:"locality"`
}

type ClinicSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Locality        string `json:"locality"`
	Lat             string `json:"lat"`
	Lng             string `json:"lng"`
	Logo            string `json:"logo"`
	Specializations string `json:"specializations"`
}

type BasicDetails struct {
	ID           string `json:"id"`
	InstID       string `json:"inst_id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Icon         string `json:"icon"`
	Lat          string `json:"lat"`
	Lng          string `json:"lng"`
	TimingStatus string `json:"timingStatus"`
	Verified     string `json:"verified"`
}

// Bounds is the viewport rectangle for map detail queries. The upstream wire
// format sends each edge as a string under historically misassigned keys
// (lat1=south, lat2=west, lng1=north, lng2=east).
type Bounds struct {
	South float64
	West  float64
	North float64
	East  float64
}

type Slot struct {
	Time   string `json:"time"`
	Status string `json:"status,omitempty"`
}

type SlotGroup struct {
	Period string `json:"period"`
	Slots  []Slot `json:"slots"`
}

type LocalitiesRequest struct {
	City       string `json:"city"`
	SearchTerm string `json:"search_term"`
}

type ClinicListRequest struct {
	Type    string `json:"type"`
	City    string `json:"city"`
	Loc     string `json:"loc"`
	Booking string `json:"booking"`
}

type BasicDetailsRequest struct {
	Type     string `json:"type"`
	City     string `json:"city"`
	Locality string `json:"locality"`
	Lat1     string `json:"lat1"`
	Lat2     string `json:"lat2"`
	Lng1     string `json:"lng1"`
	Lng2     string `json:"lng2"`
}

type ClinicDetailsRequest struct {
	ID string `json:"id"`
}

type ClinicSlotsRequest struct {
	ID string `json:"id"`
}

type AppointmentRequest struct {
	ClientMobile      string `json:"client_mobile"`
	ApptDate          string `json:"appt_date"`
	ApptTime          string `json:"appt_time"`
	FormattedApptTime string `json:"formatted_appt_time"`
	RmdID             string `json:"rmd_id"`
	Name              string `json:"name"`
	ClinicName        string `json:"clinicName"`
	Locality          string `json:"locality2"`
	ClinicVerified    string `json:"clinicVerified"`
	ReqFrom           string `json:"reqFrom"`
}
