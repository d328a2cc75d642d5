package hooks

import (
	"context"

	"github.com/navikit/director"
)

// Registry manages a collection of hooks and dispatches gating events to
// them.
//
// Hooks can implement any combination of the hook interfaces declared in the
// director package — they only receive events for the interfaces they
// implement. Hooks are called in registration order.
//
//	registry := hooks.NewRegistry()
//	registry.Register(observe.NewLogger(zapLogger))
//	registry.Register(journalHook)
//
//	run := runner.New(gate, navigator, planner, runner.DefaultConfig()).
//	    WithHooks(registry)
//
// Registry is not thread-safe. Register all hooks before starting a run;
// Fire methods should only be called by the runner.
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook to the registry. The hook can implement any
// combination of hook interfaces. Returns the registry for chaining.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireBeforeStep dispatches a BeforeStepEvent to all registered
// BeforeStepHook implementations.
func (r *Registry) FireBeforeStep(ctx context.Context, event director.BeforeStepEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(director.BeforeStepHook); ok {
			hook.OnBeforeStep(ctx, event)
		}
	}
}

// FireDecision dispatches a DecisionEvent to all registered DecisionHook
// implementations.
func (r *Registry) FireDecision(ctx context.Context, event director.DecisionEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(director.DecisionHook); ok {
			hook.OnDecision(ctx, event)
		}
	}
}

// FirePlannerReview dispatches a PlannerReviewEvent to all registered
// PlannerReviewHook implementations.
func (r *Registry) FirePlannerReview(ctx context.Context, event director.PlannerReviewEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(director.PlannerReviewHook); ok {
			hook.OnPlannerReview(ctx, event)
		}
	}
}

// FireError dispatches an ErrorEvent to all registered ErrorHook
// implementations. This is informational only; the error is still returned
// to the caller.
func (r *Registry) FireError(ctx context.Context, event director.ErrorEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(director.ErrorHook); ok {
			hook.OnError(ctx, event)
		}
	}
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.hooks)
}

// Clear removes all registered hooks.
func (r *Registry) Clear() {
	r.hooks = make([]any, 0)
}
