package models

// Status is the project lifecycle status. It is the coordination primitive
// between agents: each pending status has exactly one owning agent, and a
// project moves forward only through the store's conditional AdvanceStatus.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusPendingDataset    Status = "pending_dataset"
	StatusPendingTraining   Status = "pending_training"
	StatusPendingEvaluation Status = "pending_evaluation"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
)

// nextStatus maps each non-terminal status to its forward successor.
var nextStatus = map[Status]Status{
	StatusDraft:             StatusPendingDataset,
	StatusPendingDataset:    StatusPendingTraining,
	StatusPendingTraining:   StatusPendingEvaluation,
	StatusPendingEvaluation: StatusCompleted,
}

// Next returns the forward successor of s and whether one exists.
func (s Status) Next() (Status, bool) {
	n, ok := nextStatus[s]
	return n, ok
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether from -> to is a legal transition: the single
// forward step, or failure from any non-terminal status.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusFailed {
		return true
	}
	n, ok := from.Next()
	return ok && n == to
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingDataset, StatusPendingTraining,
		StatusPendingEvaluation, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
