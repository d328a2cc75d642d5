// Package runner drives a navigator/planner pair through a Director gate.
//
// The runner owns the control loop the director package leaves to the
// embedder: it asks the navigator for one action at a time, consults the
// Director after every action, invokes the planner whenever the gate calls
// for it, and reports the planner's verdict back through the feedback hook.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/navikit/director"
	"github.com/navikit/director/hooks"
)

// ErrMaxStepsExceeded is returned when a run exceeds the configured maximum
// navigator steps.
var ErrMaxStepsExceeded = errors.New("runner: maximum steps exceeded")

// StepResult is the outcome of one navigator step.
type StepResult struct {
	// Action describes the step for gating. Ignored when Done is true.
	Action director.ActionRecord

	// Done is true when the navigator considers the task complete.
	Done bool

	// Output is the final task output. Only set when Done is true.
	Output string
}

// Navigator is the fast, low-cost agent that executes individual actions.
//
// Step receives the most recent planner guidance, empty before the first
// planner call. Implementations construct the returned ActionRecord from
// their own telemetry; the runner never measures anything itself.
type Navigator interface {
	Step(ctx context.Context, guidance string) (*StepResult, error)
}

// Review is the planner's output for one invocation.
type Review struct {
	// Guidance is passed to the navigator on subsequent steps.
	Guidance string

	// Verdict is the planner's post-hoc quality rating of this invocation,
	// reported back to the Director.
	Verdict director.Verdict
}

// ReviewRequest carries everything the planner needs to re-evaluate.
type ReviewRequest struct {
	// Task is the original task given to Run.
	Task string

	// Reason is why the gate escalated.
	Reason director.Reason

	// History is the gate's current action window, oldest first.
	History []director.ActionRecord

	// Budget is the number of steps the navigator may take before the next
	// mandatory review.
	Budget int
}

// Planner is the slower, higher-cost agent invoked when the gate escalates.
type Planner interface {
	Review(ctx context.Context, req ReviewRequest) (*Review, error)
}

// Config holds configuration options for the Runner.
type Config struct {
	// MaxSteps is the maximum number of navigator steps before the run is
	// aborted with ErrMaxStepsExceeded. Set to 0 for unlimited steps.
	MaxSteps int
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxSteps: 100,
	}
}

// Result is the final outcome of one run.
type Result struct {
	// Output is the navigator's final output (set when the task completed).
	Output string

	// Steps is the number of navigator steps taken.
	Steps int

	// PlannerCalls is the number of planner invocations issued.
	PlannerCalls int

	// Err is any error that occurred (nil on success).
	Err error
}

// Runner owns one task run.
//
// The run flow per step: ask the navigator for an action, fire BeforeStep
// hooks, gate the action through the Director, fire Decision hooks, and if
// the decision calls for it, invoke the planner, report its verdict via
// OnPlannerReview, fire PlannerReview hooks, and carry the planner's
// guidance into the next navigator step.
type Runner struct {
	gate      *director.Director
	navigator Navigator
	planner   Planner
	config    Config
	hooks     *hooks.Registry
}

// New creates a Runner for one Director instance and one navigator/planner
// pair.
func New(gate *director.Director, navigator Navigator, planner Planner, config Config) *Runner {
	return &Runner{
		gate:      gate,
		navigator: navigator,
		planner:   planner,
		config:    config,
		hooks:     hooks.NewRegistry(),
	}
}

// WithHooks sets the runner hook registry. Returns the runner for chaining.
func (r *Runner) WithHooks(registry *hooks.Registry) *Runner {
	r.hooks = registry
	return r
}

// RegisterHook adds a hook to the runner's hook registry. The hook can
// implement any combination of hook interfaces. Returns the runner for
// chaining.
func (r *Runner) RegisterHook(hook any) *Runner {
	r.hooks.Register(hook)
	return r
}

// Run executes the task until the navigator reports completion, the step
// limit is reached, the context is canceled, or an error occurs.
//
// Run must not be called concurrently on the same Runner: the underlying
// Director requires serialized access.
func (r *Runner) Run(ctx context.Context, task string) *Result {
	result := &Result{}
	guidance := ""

	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}
		if r.config.MaxSteps > 0 && step > r.config.MaxSteps {
			result.Err = fmt.Errorf("%w: exceeded %d steps", ErrMaxStepsExceeded, r.config.MaxSteps)
			r.hooks.FireError(ctx, director.ErrorEvent{Step: step - 1, Err: result.Err})
			return result
		}

		stepResult, err := r.navigator.Step(ctx, guidance)
		if err != nil {
			result.Err = fmt.Errorf("runner: navigator step %d: %w", step, err)
			r.hooks.FireError(ctx, director.ErrorEvent{Step: step, Err: result.Err})
			return result
		}
		result.Steps = step

		if stepResult.Done {
			result.Output = stepResult.Output
			return result
		}

		r.hooks.FireBeforeStep(ctx, director.BeforeStepEvent{
			Step:   step,
			Action: stepResult.Action,
		})

		decision := r.gate.OnNavigatorStep(stepResult.Action)
		r.hooks.FireDecision(ctx, director.DecisionEvent{
			Step:     step,
			Action:   stepResult.Action,
			Decision: decision,
		})
		if !decision.CallPlanner {
			continue
		}

		review, err := r.planner.Review(ctx, ReviewRequest{
			Task:    task,
			Reason:  decision.Reason,
			History: r.gate.History(),
			Budget:  decision.Budget,
		})
		if err != nil {
			result.Err = fmt.Errorf("runner: planner review at step %d: %w", step, err)
			r.hooks.FireError(ctx, director.ErrorEvent{Step: step, Err: result.Err})
			return result
		}
		result.PlannerCalls++

		r.gate.OnPlannerReview(review.Verdict)
		r.hooks.FirePlannerReview(ctx, director.PlannerReviewEvent{
			Step:    step,
			Reason:  decision.Reason,
			Verdict: review.Verdict,
		})
		guidance = review.Guidance
	}
}
