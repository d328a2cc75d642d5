package tt

import (
	"context"

	"github.com/navikit/director"
	"github.com/navikit/director/runner"
)

// -----------------------------------------------------------------------------
// MockNavigator - implements runner.Navigator
// -----------------------------------------------------------------------------

// MockNavigator is a configurable mock that implements runner.Navigator.
// It replays a queued sequence of step results and captures the guidance
// passed to each call.
type MockNavigator struct {
	steps   []*runner.StepResult
	errors  []error
	callIdx int

	// CapturedGuidance stores the guidance passed to each Step call.
	CapturedGuidance []string
}

// NewMockNavigator creates a new MockNavigator.
func NewMockNavigator() *MockNavigator {
	return &MockNavigator{}
}

// AddStep queues an action step.
func (n *MockNavigator) AddStep(action director.ActionRecord) *MockNavigator {
	n.steps = append(n.steps, &runner.StepResult{Action: action})
	return n
}

// AddDone queues a completion step with the given output.
func (n *MockNavigator) AddDone(output string) *MockNavigator {
	n.steps = append(n.steps, &runner.StepResult{Done: true, Output: output})
	return n
}

// AddError queues an error for the next call.
func (n *MockNavigator) AddError(err error) *MockNavigator {
	for len(n.steps) <= len(n.errors) {
		n.steps = append(n.steps, nil)
	}
	n.errors = append(n.errors, err)
	return n
}

// CallCount returns the number of times Step has been called.
func (n *MockNavigator) CallCount() int {
	return n.callIdx
}

// Step implements runner.Navigator.
func (n *MockNavigator) Step(_ context.Context, guidance string) (*runner.StepResult, error) {
	idx := n.callIdx
	n.callIdx++
	n.CapturedGuidance = append(n.CapturedGuidance, guidance)

	if idx < len(n.errors) && n.errors[idx] != nil {
		return nil, n.errors[idx]
	}
	if idx < len(n.steps) && n.steps[idx] != nil {
		return n.steps[idx], nil
	}
	// Default: report completion so tests never spin.
	return &runner.StepResult{Done: true, Output: "done"}, nil
}

// -----------------------------------------------------------------------------
// MockPlanner - implements runner.Planner
// -----------------------------------------------------------------------------

// MockPlanner is a configurable mock that implements runner.Planner.
// It replays queued reviews and captures every request for verification.
type MockPlanner struct {
	reviews []*runner.Review
	errors  []error
	callIdx int

	// CapturedRequests stores the request passed to each Review call.
	CapturedRequests []runner.ReviewRequest
}

// NewMockPlanner creates a new MockPlanner.
func NewMockPlanner() *MockPlanner {
	return &MockPlanner{}
}

// AddReview queues a review with the given guidance and verdict.
func (p *MockPlanner) AddReview(guidance string, verdict director.Verdict) *MockPlanner {
	p.reviews = append(p.reviews, &runner.Review{Guidance: guidance, Verdict: verdict})
	return p
}

// AddError queues an error for the next call.
func (p *MockPlanner) AddError(err error) *MockPlanner {
	for len(p.reviews) <= len(p.errors) {
		p.reviews = append(p.reviews, nil)
	}
	p.errors = append(p.errors, err)
	return p
}

// CallCount returns the number of times Review has been called.
func (p *MockPlanner) CallCount() int {
	return p.callIdx
}

// Review implements runner.Planner.
func (p *MockPlanner) Review(_ context.Context, req runner.ReviewRequest) (*runner.Review, error) {
	idx := p.callIdx
	p.callIdx++
	p.CapturedRequests = append(p.CapturedRequests, req)

	if idx < len(p.errors) && p.errors[idx] != nil {
		return nil, p.errors[idx]
	}
	if idx < len(p.reviews) && p.reviews[idx] != nil {
		return p.reviews[idx], nil
	}
	return &runner.Review{Guidance: "continue", Verdict: director.VerdictMedium}, nil
}

// Compile-time checks.
var (
	_ runner.Navigator = (*MockNavigator)(nil)
	_ runner.Planner   = (*MockPlanner)(nil)
)
