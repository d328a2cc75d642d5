package director

// Trigger is a single escalation rule evaluated over the recent action
// history. Implementations must be stateless and side-effect free: Check is
// a pure function of the history window and the configuration.
//
// Check receives the history oldest-first and returns a [TriggerHit] when
// the rule fires, nil otherwise. Implementations must tolerate an empty
// history and windows shorter than their configured size.
type Trigger interface {
	// Name returns the reason this trigger escalates with.
	Name() Reason

	// Check inspects the history window and reports whether the rule fires.
	Check(history []ActionRecord, cfg Config) *TriggerHit
}

// TriggerHit is the ephemeral result of a trigger evaluation.
type TriggerHit struct {
	// Name is the firing trigger's reason.
	Name Reason

	// Detail is a free-form diagnostic payload for logging only. It is
	// never consumed programmatically by the Director.
	Detail string
}

// Evaluate runs the trigger chain against the history window in order and
// returns the first hit, or nil when no rule fires.
//
// The chain order is the priority order: earlier rules take precedence and
// later rules are not evaluated once one matches. An empty history never
// fires any rule. Evaluate is a pure function with no retained state.
func Evaluate(chain []Trigger, history []ActionRecord, cfg Config) *TriggerHit {
	if len(history) == 0 {
		return nil
	}
	for _, t := range chain {
		if hit := t.Check(history, cfg); hit != nil {
			return hit
		}
	}
	return nil
}

// DefaultTriggers returns the built-in rule chain in priority order:
// loop, hard-error-rate, null-gain, uncertainty, cost-latency,
// context-change, risky-action.
//
// The chain is a plain slice: embedders can append custom rules or reorder
// it and install the result with [Director.WithTriggers].
func DefaultTriggers() []Trigger {
	return []Trigger{
		LoopTrigger{},
		HardErrorRateTrigger{},
		NullGainTrigger{},
		UncertaintyTrigger{},
		CostSpikeTrigger{},
		ContextChangeTrigger{},
		RiskyActionTrigger{},
	}
}
