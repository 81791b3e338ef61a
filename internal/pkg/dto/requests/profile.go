package requests

import "medifind-service/internal/app/models"

// ReplaceProfile overwrites the whole profile blob.
type ReplaceProfile struct {
	Profile models.Profile `json:"profile"`
}

// PatchProfileField updates a single field by its JSON name.
type PatchProfileField struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}
