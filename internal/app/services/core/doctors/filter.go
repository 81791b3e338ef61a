package doctors

import (
	"medifind-service/internal/app/models"
	"medifind-service/internal/pkg/constvars"
	"strings"
)

// Criteria are the search filters. Empty fields match everything; Query wins
// over Area when both are set.
type Criteria struct {
	City      string
	Specialty string
	Area      string
	Query     string
}

// Filter returns the doctors matching every non-empty criterion, in input
// order. It never reorders or errors.
func Filter(docs []models.Doctor, criteria Criteria) []models.Doctor {
	matched := make([]models.Doctor, 0, len(docs))
	for _, doc := range docs {
		if matchesCity(&doc, criteria.City) &&
			matchesSpecialty(&doc, criteria.Specialty) &&
			matchesTerm(&doc, searchTerm(criteria)) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func searchTerm(criteria Criteria) string {
	if criteria.Query != "" {
		return criteria.Query
	}
	return criteria.Area
}

// matchesCity is a case-insensitive substring check on location, with the
// Bengaluru and Bangalore spellings treated as the same city.
func matchesCity(doc *models.Doctor, city string) bool {
	if city == "" {
		return true
	}
	location := strings.ToLower(doc.Location)
	needle := strings.ToLower(city)
	if strings.Contains(location, needle) {
		return true
	}
	switch needle {
	case constvars.CityAliasBengaluru:
		return strings.Contains(location, constvars.CityAliasBangalore)
	case constvars.CityAliasBangalore:
		return strings.Contains(location, constvars.CityAliasBengaluru)
	}
	return false
}

// matchesSpecialty is exact, case-insensitive. "Dentist" must not match
// "Dermatologist".
func matchesSpecialty(doc *models.Doctor, specialty string) bool {
	if specialty == "" {
		return true
	}
	return strings.EqualFold(doc.Specialty, specialty)
}

func matchesTerm(doc *models.Doctor, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, haystack := range []string{doc.Name, doc.Clinic, doc.Specialty, doc.Location} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}
