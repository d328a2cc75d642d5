package director

import "fmt"

// LoopTrigger fires when the two most recent steps landed on the same URL
// with an identical DOM fingerprint and neither made progress. Identical
// rendered state with no forward progress across two consecutive steps is a
// strong loop signal.
type LoopTrigger struct{}

// Name implements Trigger.
func (LoopTrigger) Name() Reason { return ReasonLoop }

// Check implements Trigger.
func (LoopTrigger) Check(history []ActionRecord, _ Config) *TriggerHit {
	if len(history) < 2 {
		return nil
	}
	a := history[len(history)-1]
	b := history[len(history)-2]
	if a.URL != b.URL || a.DOMHash != b.DOMHash {
		return nil
	}
	if !a.NoProgress() || !b.NoProgress() {
		return nil
	}
	return &TriggerHit{
		Name:   ReasonLoop,
		Detail: fmt.Sprintf("repeated state at %s (dom %s)", a.URL, a.DOMHash),
	}
}

// HardErrorRateTrigger counts hard errors within the trailing ErrorWindow
// records and fires when the count reaches HardErrorMin. When fewer than
// ErrorWindow records exist, the available records are used.
type HardErrorRateTrigger struct{}

// Name implements Trigger.
func (HardErrorRateTrigger) Name() Reason { return ReasonHardErrorRate }

// Check implements Trigger.
func (HardErrorRateTrigger) Check(history []ActionRecord, cfg Config) *TriggerHit {
	window := tail(history, cfg.ErrorWindow)
	count := 0
	for _, r := range window {
		if r.HasHardError() {
			count++
		}
	}
	if count < cfg.HardErrorMin {
		return nil
	}
	return &TriggerHit{
		Name:   ReasonHardErrorRate,
		Detail: fmt.Sprintf("%d hard errors in last %d steps", count, len(window)),
	}
}

// NullGainTrigger fires when an exactly-full trailing NullGainWindow shows
// no successes and no new entities. Unlike HardErrorRateTrigger, a shorter
// window never fires: the rule requires NullGainWindow records to exist.
type NullGainTrigger struct{}

// Name implements Trigger.
func (NullGainTrigger) Name() Reason { return ReasonNullGain }

// Check implements Trigger.
func (NullGainTrigger) Check(history []ActionRecord, cfg Config) *TriggerHit {
	if cfg.NullGainWindow <= 0 || len(history) < cfg.NullGainWindow {
		return nil
	}
	window := tail(history, cfg.NullGainWindow)
	for _, r := range window {
		if !r.NoProgress() {
			return nil
		}
	}
	return &TriggerHit{
		Name:   ReasonNullGain,
		Detail: fmt.Sprintf("no progress across last %d steps", cfg.NullGainWindow),
	}
}

// UncertaintyTrigger fires when the last step's self-reported confidence is
// below the configured threshold.
type UncertaintyTrigger struct{}

// Name implements Trigger.
func (UncertaintyTrigger) Name() Reason { return ReasonUncertainty }

// Check implements Trigger.
func (UncertaintyTrigger) Check(history []ActionRecord, cfg Config) *TriggerHit {
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if last.Confidence >= cfg.ConfidenceThreshold {
		return nil
	}
	return &TriggerHit{
		Name:   ReasonUncertainty,
		Detail: fmt.Sprintf("confidence %.2f below threshold %.2f", last.Confidence, cfg.ConfidenceThreshold),
	}
}

// CostSpikeTrigger fires when the last step exceeded the token budget or the
// wall-clock gate time.
type CostSpikeTrigger struct{}

// Name implements Trigger.
func (CostSpikeTrigger) Name() Reason { return ReasonCostLatency }

// Check implements Trigger.
func (CostSpikeTrigger) Check(history []ActionRecord, cfg Config) *TriggerHit {
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if last.Tokens > cfg.SmallBudgetTokens {
		return &TriggerHit{
			Name:   ReasonCostLatency,
			Detail: fmt.Sprintf("%d tokens exceeds budget of %d", last.Tokens, cfg.SmallBudgetTokens),
		}
	}
	if last.Runtime > cfg.GateTime {
		return &TriggerHit{
			Name:   ReasonCostLatency,
			Detail: fmt.Sprintf("runtime %s exceeds gate time %s", last.Runtime, cfg.GateTime),
		}
	}
	return nil
}

// ContextChangeTrigger fires when the last step detected an out-of-band
// environment change.
type ContextChangeTrigger struct{}

// Name implements Trigger.
func (ContextChangeTrigger) Name() Reason { return ReasonContextChange }

// Check implements Trigger.
func (ContextChangeTrigger) Check(history []ActionRecord, _ Config) *TriggerHit {
	if len(history) == 0 || !history[len(history)-1].ContextChange {
		return nil
	}
	return &TriggerHit{
		Name:   ReasonContextChange,
		Detail: "step reported an out-of-band context change",
	}
}

// RiskyActionTrigger fires when the last step flagged itself as high-risk.
type RiskyActionTrigger struct{}

// Name implements Trigger.
func (RiskyActionTrigger) Name() Reason { return ReasonRiskyAction }

// Check implements Trigger.
func (RiskyActionTrigger) Check(history []ActionRecord, _ Config) *TriggerHit {
	if len(history) == 0 || !history[len(history)-1].Risky {
		return nil
	}
	return &TriggerHit{
		Name:   ReasonRiskyAction,
		Detail: "step flagged the action as high-risk",
	}
}

// tail returns the last n records, or all of them when fewer exist.
func tail(history []ActionRecord, n int) []ActionRecord {
	if n >= len(history) {
		return history
	}
	return history[len(history)-n:]
}

// Compile-time checks.
var (
	_ Trigger = LoopTrigger{}
	_ Trigger = HardErrorRateTrigger{}
	_ Trigger = NullGainTrigger{}
	_ Trigger = UncertaintyTrigger{}
	_ Trigger = CostSpikeTrigger{}
	_ Trigger = ContextChangeTrigger{}
	_ Trigger = RiskyActionTrigger{}
)
