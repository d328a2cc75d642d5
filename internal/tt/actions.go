// Package tt provides test helpers and mocks shared across the module's
// tests.
package tt

import (
	"time"

	"github.com/navikit/director"
)

// ActionBuilder builds ActionRecords for tests with sensible benign
// defaults: a successful step with high confidence, small cost, and no
// error flags.
type ActionBuilder struct {
	record director.ActionRecord
}

// Action starts a builder for a step at the given URL.
func Action(url string) *ActionBuilder {
	return &ActionBuilder{record: director.ActionRecord{
		ActionID:   director.NewActionID(),
		URL:        url,
		DOMHash:    "dom-" + url,
		Success:    true,
		Confidence: 0.9,
		Tokens:     100,
		Runtime:    500 * time.Millisecond,
	}}
}

// Fail marks the step as unsuccessful.
func (b *ActionBuilder) Fail() *ActionBuilder {
	b.record.Success = false
	return b
}

// WithDOMHash sets the DOM fingerprint.
func (b *ActionBuilder) WithDOMHash(hash string) *ActionBuilder {
	b.record.DOMHash = hash
	return b
}

// WithConfidence sets the self-reported confidence.
func (b *ActionBuilder) WithConfidence(c float64) *ActionBuilder {
	b.record.Confidence = c
	return b
}

// WithTokens sets the tokens consumed by the step.
func (b *ActionBuilder) WithTokens(n int) *ActionBuilder {
	b.record.Tokens = n
	return b
}

// WithRuntime sets the wall-clock duration of the step.
func (b *ActionBuilder) WithRuntime(d time.Duration) *ActionBuilder {
	b.record.Runtime = d
	return b
}

// WithEntities sets the new entities discovered by the step.
func (b *ActionBuilder) WithEntities(entities ...string) *ActionBuilder {
	b.record.NewEntities = entities
	return b
}

// WithHardError attaches a hard error with the given code.
func (b *ActionBuilder) WithHardError(code int) *ActionBuilder {
	b.record.Error = &director.ActionError{Code: code, Kind: director.ErrorHard}
	return b
}

// WithSoftError attaches a soft error with the given code.
func (b *ActionBuilder) WithSoftError(code int) *ActionBuilder {
	b.record.Error = &director.ActionError{Code: code, Kind: director.ErrorSoft}
	return b
}

// Risky flags the action as high-risk.
func (b *ActionBuilder) Risky() *ActionBuilder {
	b.record.Risky = true
	return b
}

// ContextChanged flags an out-of-band environment change.
func (b *ActionBuilder) ContextChanged() *ActionBuilder {
	b.record.ContextChange = true
	return b
}

// Build returns the record.
func (b *ActionBuilder) Build() director.ActionRecord {
	return b.record
}
