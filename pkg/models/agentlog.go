package models

import "time"

// AgentName identifies which agent wrote a log entry.
type AgentName string

const (
	AgentPlanner    AgentName = "planner"
	AgentDataset    AgentName = "dataset"
	AgentTraining   AgentName = "training"
	AgentEvaluation AgentName = "evaluation"
	AgentGateway    AgentName = "gateway"
)

// LogLevel is the severity of an AgentLog entry.
type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogWarning LogLevel = "warning"
	LogError   LogLevel = "error"
)

// AgentLog is one append-only activity record. ProjectID is empty for
// process-level events emitted outside any project's scope.
type AgentLog struct {
	ID        string    `json:"agent_log_id"`
	ProjectID string    `json:"project_id,omitempty"`
	AgentName AgentName `json:"agent_name"`
	Message   string    `json:"message"`
	LogLevel  LogLevel  `json:"log_level"`
	CreatedAt time.Time `json:"created_at"`
}
