package models

import "time"

// Dataset records the archive a project trains on.
type Dataset struct {
	ID        string    `json:"dataset_id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	ObjectURI string    `json:"object_uri"`
	Size      string    `json:"size"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// TrainedModel records the weights artifact produced by training. Accuracy
// and the evaluation report are filled in by the evaluation agent.
type TrainedModel struct {
	ID        string         `json:"model_id"`
	ProjectID string         `json:"project_id"`
	Name      string         `json:"name"`
	Framework string         `json:"framework"`
	ObjectURI string         `json:"object_uri"`
	Accuracy  *float64       `json:"accuracy,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
