// Package flowerr carries the closed error-kind taxonomy used across the
// store adapter and the workflow agents. Kinds decide what a workflow does
// with a failure: retry, mark the project failed, or leave it untouched.
package flowerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	// Transient failures may succeed on retry (network, lock timeouts).
	Transient Kind = "transient"
	// NotFound means a referenced row or object does not exist.
	NotFound Kind = "not_found"
	// Conflict means another writer got there first (claim lost, duplicate id).
	Conflict Kind = "conflict"
	// InputInvalid means the caller's input cannot be processed.
	InputInvalid Kind = "input_invalid"
	// PlanInvalid means the LLM output failed schema validation after retry.
	PlanInvalid Kind = "plan_invalid"
	// BadDatasetLayout means the archive matched no accepted directory layout.
	BadDatasetLayout Kind = "bad_dataset_layout"
	// NoCandidate means dataset search produced no acceptable result.
	NoCandidate Kind = "no_candidate"
	// ResourceExhausted means disk, memory, or quota ran out.
	ResourceExhausted Kind = "resource_exhausted"
	// Timeout means the workflow deadline expired.
	Timeout Kind = "timeout"
	// Dependency means a downstream service (LLM, trainer, source API) failed
	// non-transiently.
	Dependency Kind = "dependency"
	// Integrity means an artifact was persisted but the status row could not
	// be updated to match. The project must NOT be marked failed.
	Integrity Kind = "integrity"
	// Permanent is the catch-all for everything else.
	Permanent Kind = "permanent"
)

// Error is a classified error with the workflow step it occurred in.
type Error struct {
	Kind Kind
	Step string
	Err  error
}

func (e *Error) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Kind, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error from a format string.
func New(kind Kind, step, format string, args ...any) *Error {
	return &Error{Kind: kind, Step: step, Err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error. Returns nil when err is nil. If err is
// already classified the inner kind is preserved and only the step is
// annotated when missing.
func Wrap(kind Kind, step string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		if fe.Step == "" && step != "" {
			return &Error{Kind: fe.Kind, Step: step, Err: fe.Err}
		}
		return err
	}
	return &Error{Kind: kind, Step: step, Err: err}
}

// KindOf extracts the kind from err, defaulting to Permanent for
// unclassified errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Permanent
}

// StepOf extracts the workflow step annotation, if any.
func StepOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Step
	}
	return ""
}

// IsTransient reports whether err should be retried.
func IsTransient(err error) bool {
	return KindOf(err) == Transient
}

// IsIntegrity reports whether err is the persisted-artifact-without-status
// case that must not mark the project failed.
func IsIntegrity(err error) bool {
	return KindOf(err) == Integrity
}
