package director

import "context"

// -----------------------------------------------------------------------------
// Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks let the owning control loop observe gating activity without coupling
// the Director to any logging, metrics, or storage layer. To use hooks:
//
//  1. Implement the desired hook interface(s)
//  2. Register with hooks.Registry
//  3. Pass the registry to the runner
//
// Example:
//
//	type LoggingHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *LoggingHook) OnDecision(ctx context.Context, e director.DecisionEvent) {
//	    if e.Decision.CallPlanner {
//	        h.logger.Printf("step %d: planner invoked (%s)", e.Step, e.Decision.Reason)
//	    }
//	}
//
//	registry := hooks.NewRegistry()
//	registry.Register(&LoggingHook{logger: log.Default()})
//
// A single hook can implement any combination of hook interfaces; it only
// receives events for the interfaces it implements. Hooks are informational:
// they cannot alter decisions, and they should not return errors or panic.
// -----------------------------------------------------------------------------

// BeforeStepEvent is fired after the navigator produced an action but before
// the gate decision for it.
type BeforeStepEvent struct {
	// Step is the 1-based step index within the run.
	Step int

	// Action is the navigator action about to be gated.
	Action ActionRecord
}

// DecisionEvent is fired after every gate decision.
type DecisionEvent struct {
	Step     int
	Action   ActionRecord
	Decision Decision
}

// PlannerReviewEvent is fired after a planner invocation completed and its
// verdict was reported back to the Director.
type PlannerReviewEvent struct {
	Step    int
	Reason  Reason
	Verdict Verdict
}

// ErrorEvent is fired when a run fails. The error is still returned to the
// caller; the event exists for logging only.
type ErrorEvent struct {
	Step int
	Err  error
}

// BeforeStepHook is implemented by hooks that want to observe actions before
// they are gated.
type BeforeStepHook interface {
	OnBeforeStep(ctx context.Context, event BeforeStepEvent)
}

// DecisionHook is implemented by hooks that want to observe gate decisions.
type DecisionHook interface {
	OnDecision(ctx context.Context, event DecisionEvent)
}

// PlannerReviewHook is implemented by hooks that want to observe planner
// verdicts.
type PlannerReviewHook interface {
	OnPlannerReview(ctx context.Context, event PlannerReviewEvent)
}

// ErrorHook is implemented by hooks that want to be notified of run errors.
type ErrorHook interface {
	OnError(ctx context.Context, event ErrorEvent)
}
