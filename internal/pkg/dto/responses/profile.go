package responses

import "medifind-service/internal/app/models"

type Profile struct {
	Profile           models.Profile `json:"profile"`
	CompletionPercent int            `json:"completion_percent"`
}

type ProfilePhoto struct {
	ObjectName string `json:"object_name"`
}
