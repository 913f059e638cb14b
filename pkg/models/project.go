// Package models defines the domain types shared by the store adapter, the
// agents, and the API layer. Keeping them separate from the generated ent
// types lets workflow code be tested against fakes.
package models

import "time"

// Project is a user's ML pipeline run.
type Project struct {
	ID             string         `json:"project_id"`
	UserID         string         `json:"user_id"`
	Name           string         `json:"name"`
	TaskType       string         `json:"task_type"`
	Framework      string         `json:"framework"`
	DatasetSource  string         `json:"dataset_source"`
	SearchKeywords []string       `json:"search_keywords"`
	Status         Status         `json:"status"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Metadata keys written by the agents.
const (
	MetaNumClasses   = "num_classes"
	MetaBundleURI    = "bundle_uri"
	MetaError        = "error"
	MetaPlan         = "plan"
	MetaProcessedURI = "processed_dataset_uri"
)

// ErrorDetail is stored under Metadata[MetaError] when a workflow fails.
type ErrorDetail struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
	Step   string `json:"step"`
}

// ProjectFilters contains filtering options for listing projects.
type ProjectFilters struct {
	UserID string `json:"user_id,omitempty"`
	Status Status `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ProjectDetail is a project with its artifacts embedded, as returned by the
// gateway's project detail endpoint.
type ProjectDetail struct {
	Project
	Datasets []*Dataset      `json:"datasets"`
	Models   []*TrainedModel `json:"models"`
}

// AdvanceResult is the outcome of a conditional status update.
type AdvanceResult int

const (
	// Claimed means the row matched the expected status and was updated.
	Claimed AdvanceResult = iota
	// NotClaimed means the row exists but its status has moved on.
	NotClaimed
	// NoSuchProject means no row with the given id exists.
	NoSuchProject
)

func (r AdvanceResult) String() string {
	switch r {
	case Claimed:
		return "claimed"
	case NotClaimed:
		return "not_claimed"
	case NoSuchProject:
		return "no_such_project"
	}
	return "unknown"
}
