package models

import "strings"

// Profile is the patient profile blob. Every field is a free-form string;
// completion counts the non-blank ones.
type Profile struct {
	UserName         string `json:"user_name"`
	ContactNumber    string `json:"contact_number"`
	Email            string `json:"email"`
	Gender           string `json:"gender"`
	DOB              string `json:"dob"`
	BloodGroup       string `json:"blood_group"`
	MaritalStatus    string `json:"marital_status"`
	Height           string `json:"height"`
	Weight           string `json:"weight"`
	EmergencyContact string `json:"emergency_contact"`
	Location         string `json:"location"`

	// Medical
	Allergies       string `json:"allergies"`
	CurrentMeds     string `json:"current_meds"`
	PastMeds        string `json:"past_meds"`
	ChronicDiseases string `json:"chronic_diseases"`
	Injuries        string `json:"injuries"`
	Surgeries       string `json:"surgeries"`

	// Lifestyle
	Smoking        string `json:"smoking"`
	Alcohol        string `json:"alcohol"`
	ActivityLevel  string `json:"activity_level"`
	FoodPreference string `json:"food_preference"`
	Occupation     string `json:"occupation"`
}

// fieldPointers maps JSON field names to their struct fields. The map drives
// single-field PATCH updates and the completion count, so the two can never
// disagree about which fields exist.
func (p *Profile) fieldPointers() map[string]*string {
	return map[string]*string{
		"user_name":         &p.UserName,
		"contact_number":    &p.ContactNumber,
		"email":             &p.Email,
		"gender":            &p.Gender,
		"dob":               &p.DOB,
		"blood_group":       &p.BloodGroup,
		"marital_status":    &p.MaritalStatus,
		"height":            &p.Height,
		"weight":            &p.Weight,
		"emergency_contact": &p.EmergencyContact,
		"location":          &p.Location,
		"allergies":         &p.Allergies,
		"current_meds":      &p.CurrentMeds,
		"past_meds":         &p.PastMeds,
		"chronic_diseases":  &p.ChronicDiseases,
		"injuries":          &p.Injuries,
		"surgeries":         &p.Surgeries,
		"smoking":           &p.Smoking,
		"alcohol":           &p.Alcohol,
		"activity_level":    &p.ActivityLevel,
		"food_preference":   &p.FoodPreference,
		"occupation":        &p.Occupation,
	}
}

// SetField sets a single profile field by its JSON name. It returns false
// when the name is not part of the schema.
func (p *Profile) SetField(name, value string) bool {
	ptr, ok := p.fieldPointers()[name]
	if !ok {
		return false
	}
	*ptr = value
	return true
}

// CompletionPercent returns the share of non-blank fields, rounded to the
// nearest whole percent.
func (p *Profile) CompletionPercent() int {
	fields := p.fieldPointers()
	filled := 0
	for _, ptr := range fields {
		if strings.TrimSpace(*ptr) != "" {
			filled++
		}
	}
	return int(float64(filled)/float64(len(fields))*100 + 0.5)
}
