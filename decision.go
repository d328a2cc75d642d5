package director

// Reason identifies why the Director asked for a planner invocation.
// Trigger names double as reasons; "initial" and "budget" are produced by
// the state machine itself, never by a trigger.
type Reason string

const (
	// ReasonInitial is the mandatory planning pass on the first-ever step.
	ReasonInitial Reason = "initial"

	// ReasonBudget means the step budget between planner calls ran out.
	ReasonBudget Reason = "budget"

	// ReasonLoop means two consecutive steps showed an identical rendered
	// state with no forward progress.
	ReasonLoop Reason = "loop"

	// ReasonHardErrorRate means too many hard errors accumulated within the
	// trailing error window.
	ReasonHardErrorRate Reason = "hard-error-rate"

	// ReasonNullGain means an entire trailing window of steps produced no
	// new entities and no successes.
	ReasonNullGain Reason = "null-gain"

	// ReasonUncertainty means the navigator's self-reported confidence fell
	// below the configured threshold.
	ReasonUncertainty Reason = "uncertainty"

	// ReasonCostLatency means the last step exceeded the token or wall-clock
	// spike thresholds.
	ReasonCostLatency Reason = "cost-latency"

	// ReasonContextChange means the last step detected an out-of-band
	// environment change.
	ReasonContextChange Reason = "context-change"

	// ReasonRiskyAction means the last step flagged itself as high-risk.
	ReasonRiskyAction Reason = "risky-action"
)

// Decision is the Director's verdict for one navigator step.
type Decision struct {
	// CallPlanner is true when the caller should pause the navigator and
	// invoke the planner before the next step.
	CallPlanner bool

	// Reason explains the escalation. Empty when CallPlanner is false.
	Reason Reason

	// Budget is the current step budget (N) at decision time, after any
	// site-transition reset has been applied.
	Budget int
}

// Verdict is the planner's post-hoc quality rating of its own invocation,
// graded by the caller and reported back via [Director.OnPlannerReview].
type Verdict string

const (
	VerdictGood   Verdict = "good"
	VerdictMedium Verdict = "medium"
	VerdictBad    Verdict = "bad"
)
