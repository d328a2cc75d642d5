package director

import "time"

// Default gate thresholds. These must be reproduced exactly for
// compatibility with embedders that persist settings.
const (
	DefaultBudget              = 3
	DefaultBudgetMin           = 2
	DefaultBudgetMax           = 10
	DefaultConfidenceThreshold = 0.6
	DefaultErrorWindow         = 5
	DefaultHardErrorMin        = 2
	DefaultNullGainWindow      = 3
	DefaultSmallBudgetTokens   = 800
	DefaultGateTime            = 12 * time.Second

	// DefaultHistoryCapacity is the history buffer size used when the
	// embedder does not specify one.
	DefaultHistoryCapacity = 64
)

// Config holds the gate's numeric thresholds.
//
// The invariant BudgetMin <= Budget <= BudgetMax holds after every mutation:
// the Director re-clamps on construction, on [Director.SetConfig], and on
// site-transition resets. The bounds themselves are static for the lifetime
// of a Director.
type Config struct {
	// Budget is the current step budget (N) between planner calls.
	Budget int

	// BudgetMin and BudgetMax bound Budget.
	BudgetMin int
	BudgetMax int

	// ConfidenceThreshold is the confidence below which the uncertainty
	// trigger escalates.
	ConfidenceThreshold float64

	// ErrorWindow is the size of the trailing window examined for
	// hard-error-rate detection.
	ErrorWindow int

	// HardErrorMin is the minimum count of hard errors within ErrorWindow
	// that escalates.
	HardErrorMin int

	// NullGainWindow is the size of the trailing window examined for
	// null-gain detection. The window must be exactly full to fire.
	NullGainWindow int

	// SmallBudgetTokens is the per-step token threshold for cost-spike
	// detection.
	SmallBudgetTokens int

	// GateTime is the per-step latency threshold for cost-spike detection.
	GateTime time.Duration
}

// DefaultConfig returns the gate configuration used when the embedder
// supplies no settings of its own.
func DefaultConfig() Config {
	return Config{
		Budget:              DefaultBudget,
		BudgetMin:           DefaultBudgetMin,
		BudgetMax:           DefaultBudgetMax,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		ErrorWindow:         DefaultErrorWindow,
		HardErrorMin:        DefaultHardErrorMin,
		NullGainWindow:      DefaultNullGainWindow,
		SmallBudgetTokens:   DefaultSmallBudgetTokens,
		GateTime:            DefaultGateTime,
	}
}

// clamped returns a copy with Budget forced into [BudgetMin, BudgetMax].
func (c Config) clamped() Config {
	if c.Budget < c.BudgetMin {
		c.Budget = c.BudgetMin
	}
	if c.Budget > c.BudgetMax {
		c.Budget = c.BudgetMax
	}
	return c
}

// ConfigPatch is a partial configuration update for [Director.SetConfig].
// Nil fields are left unchanged. The budget bounds are static and therefore
// not patchable.
type ConfigPatch struct {
	Budget              *int
	ConfidenceThreshold *float64
	ErrorWindow         *int
	HardErrorMin        *int
	NullGainWindow      *int
	SmallBudgetTokens   *int
	GateTime            *time.Duration
}

// apply merges the patch into the config and re-clamps the budget.
func (c Config) apply(p ConfigPatch) Config {
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.ConfidenceThreshold != nil {
		c.ConfidenceThreshold = *p.ConfidenceThreshold
	}
	if p.ErrorWindow != nil {
		c.ErrorWindow = *p.ErrorWindow
	}
	if p.HardErrorMin != nil {
		c.HardErrorMin = *p.HardErrorMin
	}
	if p.NullGainWindow != nil {
		c.NullGainWindow = *p.NullGainWindow
	}
	if p.SmallBudgetTokens != nil {
		c.SmallBudgetTokens = *p.SmallBudgetTokens
	}
	if p.GateTime != nil {
		c.GateTime = *p.GateTime
	}
	return c.clamped()
}
