package requests

// SearchDoctors carries the query-string filters of a directory search. All
// filters are optional; an empty request returns the full directory.
type SearchDoctors struct {
	City      string   `json:"city"`
	Specialty string   `json:"specialty"`
	Area      string   `json:"area"`
	Query     string   `json:"query"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type GetLocalities struct {
	City       string `json:"city" validate:"required"`
	SearchTerm string `json:"search_term"`
}

type GetMapView struct {
	City      string `json:"city" validate:"required"`
	Specialty string `json:"specialty"`
	Area      string `json:"area"`
}
