package director

import (
	"time"

	"github.com/google/uuid"
)

// ErrorKind classifies an error reported by a navigator step.
type ErrorKind string

const (
	// ErrorHard marks failures the navigator cannot recover from on its own
	// (blocked navigation, missing element, rejected form submission).
	ErrorHard ErrorKind = "hard"

	// ErrorSoft marks transient failures that are safe to retry.
	ErrorSoft ErrorKind = "soft"
)

// ActionError is the error reported by a navigator step, if any.
type ActionError struct {
	Code int
	Kind ErrorKind
}

// ActionRecord is one navigator step as reported by the caller. Records are
// immutable once created and are always passed by value; the Director never
// modifies them. All time and token measurements are supplied by the caller,
// the Director performs no measurement of its own.
type ActionRecord struct {
	// ActionID is an opaque identifier, unique per step.
	// Use [NewActionID] when the embedder has no identifier of its own.
	ActionID string

	// URL is the navigated page address at the time of the action.
	URL string

	// DOMHash is a content fingerprint of the page DOM after the action.
	// Equal hashes imply an unchanged rendered state.
	DOMHash string

	// Success reports whether the action achieved its immediate goal.
	Success bool

	// Confidence is the navigator's self-reported certainty in [0, 1].
	Confidence float64

	// Tokens is the number of LLM tokens consumed by the step.
	Tokens int

	// Runtime is the wall-clock duration of the step.
	Runtime time.Duration

	// NewEntities lists identifiers of new semantic entities discovered by
	// the step. An empty slice means the step produced no progress signal.
	NewEntities []string

	// Error is the error reported by the step, nil when the step had none.
	Error *ActionError

	// ContextChange is true when the step detected an out-of-band
	// environment change, such as an unexpected redirect.
	ContextChange bool

	// Risky is true when the step flagged the action as high-risk,
	// such as a destructive form submission.
	Risky bool
}

// HasHardError reports whether the step carries a hard error.
func (a ActionRecord) HasHardError() bool {
	return a.Error != nil && a.Error.Kind == ErrorHard
}

// NoProgress reports whether the step produced no forward signal:
// it did not succeed and discovered no new entities.
func (a ActionRecord) NoProgress() bool {
	return !a.Success && len(a.NewEntities) == 0
}

// NewActionID returns a unique identifier for an ActionRecord.
func NewActionID() string {
	return uuid.NewString()
}
