package director

import (
	"net/url"

	"github.com/navikit/director/internal/ring"
)

// Director decides, after every navigator step, whether the cheap navigator
// may continue unsupervised or the expensive planner must be consulted.
//
// # State Machine
//
// A fresh Director is awaiting its first call: the first step always
// escalates with [ReasonInitial] regardless of the trigger rules. After
// that it runs steady-state, tracking the steps taken since the last
// planner call against the configured budget and consulting the trigger
// chain after every step. There is no terminal state; the Director lives
// for the session duration and is discarded with it.
//
// A site transition (the hostname of the navigation target changes)
// invalidates all accumulated escalation state: the budget drops back to
// the default, the step counter clears, and the next decision is again the
// mandatory initial planning pass.
//
// # Concurrency
//
// A Director is single-threaded and synchronous. Calls must be serialized
// by the owner, typically one Director per active task driven from a single
// control loop. Nothing is shared across instances.
type Director struct {
	config   Config
	history  *ring.Ring[ActionRecord]
	triggers []Trigger

	siteKey            string
	stepsSincePlanner  int
	plannerReviewCount int
}

// New creates a Director with the given configuration and history capacity.
// The configuration is clamped on construction. A non-positive capacity
// fails with [ring.ErrInvalidCapacity]; callers must not proceed with an
// invalid Director. Use [DefaultConfig] and [DefaultHistoryCapacity] when
// the embedder has no settings of its own.
func New(cfg Config, historyCapacity int) (*Director, error) {
	history, err := ring.New[ActionRecord](historyCapacity)
	if err != nil {
		return nil, err
	}
	return &Director{
		config:   cfg.clamped(),
		history:  history,
		triggers: DefaultTriggers(),
	}, nil
}

// WithTriggers replaces the trigger chain. The chain is evaluated in the
// given order with earlier rules taking precedence. Returns the Director
// for chaining.
func (d *Director) WithTriggers(chain ...Trigger) *Director {
	d.triggers = chain
	return d
}

// OnNavigatorStep records one navigator action and decides whether the
// planner must be invoked before the next step.
//
// The decision procedure, in order:
//
//  1. The action is pushed into the history buffer.
//  2. A site transition resets the budget to the default and clears all
//     escalation counters.
//  3. The first-ever step escalates with [ReasonInitial] regardless of the
//     trigger rules. The bootstrap call does not count toward the budget.
//  4. The trigger chain is evaluated over the current history window; a hit
//     escalates with the trigger's reason.
//  5. When the steps since the last planner call reach the budget, the step
//     escalates with [ReasonBudget].
//  6. Otherwise the navigator continues.
func (d *Director) OnNavigatorStep(action ActionRecord) Decision {
	d.history.Push(action)
	d.trackSite(action.URL)

	if d.plannerReviewCount == 0 {
		return d.escalate(ReasonInitial)
	}

	if hit := Evaluate(d.triggers, d.history.Snapshot(), d.config); hit != nil {
		return d.escalate(hit.Name)
	}

	d.stepsSincePlanner++
	if d.stepsSincePlanner >= d.config.Budget {
		return d.escalate(ReasonBudget)
	}

	return Decision{CallPlanner: false, Budget: d.config.Budget}
}

// OnPlannerReview is the feedback hook invoked by the caller once per
// planner invocation, after the planner's output has been graded.
//
// It is deliberately inert: adapting the budget to verdict quality (shrink
// after "bad", grow after repeated "good") is a deferred extension, and the
// hook is kept so embedders already wire the feedback path.
func (d *Director) OnPlannerReview(_ Verdict) {}

// Config returns a copy of the current gate configuration.
func (d *Director) Config() Config {
	return d.config
}

// SetConfig merges a partial update into the current configuration and
// re-clamps the budget into its bounds.
func (d *Director) SetConfig(patch ConfigPatch) {
	d.config = d.config.apply(patch)
}

// History returns a copy of the stored action records, oldest first.
func (d *Director) History() []ActionRecord {
	return d.history.Snapshot()
}

// escalate resets the step counter, counts the planner invocation, and
// builds the escalating decision. All state mutation for a planner call
// happens here.
func (d *Director) escalate(reason Reason) Decision {
	d.stepsSincePlanner = 0
	d.plannerReviewCount++
	return Decision{CallPlanner: true, Reason: reason, Budget: d.config.Budget}
}

// trackSite derives the hostname of the navigation target and resets all
// escalation state when it changes. Malformed URLs fall back silently to
// the previously known site key: site tracking is a heuristic, and a single
// bad URL must not crash the gate or needlessly reset escalation state.
func (d *Director) trackSite(raw string) {
	host := d.siteKey
	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	if d.siteKey != "" && host != d.siteKey {
		// A site transition invalidates all accumulated escalation state.
		d.config.Budget = DefaultBudget
		d.config = d.config.clamped()
		d.stepsSincePlanner = 0
		d.plannerReviewCount = 0
	}
	d.siteKey = host
}
