package flowerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndKindOf(t *testing.T) {
	err := New(Transient, "download", "attempt %d failed", 2)
	assert.Equal(t, Transient, KindOf(err))
	assert.Equal(t, "download", StepOf(err))
	assert.Equal(t, "transient [download]: attempt 2 failed", err.Error())

	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, Permanent, KindOf(errors.New("plain")))
}

func TestWrap_PreservesInnerKind(t *testing.T) {
	inner := New(NotFound, "get_project", "no such project")

	// Wrapping a classified error never reclassifies it.
	wrapped := Wrap(Transient, "advance", inner)
	assert.Equal(t, NotFound, KindOf(wrapped))
	assert.Equal(t, "get_project", StepOf(wrapped))

	// A missing step gets annotated.
	stepless := &Error{Kind: Conflict, Err: errors.New("claim lost")}
	wrapped = Wrap(Transient, "advance", stepless)
	assert.Equal(t, Conflict, KindOf(wrapped))
	assert.Equal(t, "advance", StepOf(wrapped))
}

func TestWrap_ClassifiesPlainErrors(t *testing.T) {
	assert.NoError(t, Wrap(Transient, "x", nil))

	err := Wrap(Dependency, "llm_complete", errors.New("connection refused"))
	assert.Equal(t, Dependency, KindOf(err))
	assert.Equal(t, "llm_complete", StepOf(err))
}

func TestWrap_SurvivesFmtWrapping(t *testing.T) {
	// Kinds must be recoverable through %w chains built by callers.
	err := fmt.Errorf("stage dataset: %w", New(NoCandidate, "search", "nothing matched"))
	assert.Equal(t, NoCandidate, KindOf(err))
	assert.Equal(t, "search", StepOf(err))
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(Permanent, "step", inner)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.True(t, errors.Is(err, inner))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsTransient(New(Transient, "", "x")))
	assert.False(t, IsTransient(New(Permanent, "", "x")))
	assert.True(t, IsIntegrity(New(Integrity, "", "x")))
	assert.False(t, IsIntegrity(errors.New("plain")))
}
