package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusNext(t *testing.T) {
	order := []Status{StatusDraft, StatusPendingDataset, StatusPendingTraining, StatusPendingEvaluation, StatusCompleted}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		assert.True(t, ok, "%s should have a successor", order[i])
		assert.Equal(t, order[i+1], next)
	}

	for _, s := range []Status{StatusCompleted, StatusFailed} {
		_, ok := s.Next()
		assert.False(t, ok, "%s is terminal", s)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusPendingDataset, true},
		{StatusPendingDataset, StatusPendingTraining, true},
		{StatusPendingTraining, StatusPendingEvaluation, true},
		{StatusPendingEvaluation, StatusCompleted, true},

		// Failure is reachable from any non-terminal status.
		{StatusDraft, StatusFailed, true},
		{StatusPendingDataset, StatusFailed, true},
		{StatusPendingEvaluation, StatusFailed, true},

		// No skipping, no going back, no leaving terminal states.
		{StatusDraft, StatusPendingTraining, false},
		{StatusPendingTraining, StatusPendingDataset, false},
		{StatusPendingDataset, StatusCompleted, false},
		{StatusCompleted, StatusFailed, false},
		{StatusFailed, StatusPendingDataset, false},
		{StatusCompleted, StatusPendingDataset, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusPendingEvaluation.Terminal())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusPendingDataset, StatusPendingTraining,
		StatusPendingEvaluation, StatusCompleted, StatusFailed} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}
