package director

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3, cfg.Budget)
	assert.Equal(t, 2, cfg.BudgetMin)
	assert.Equal(t, 10, cfg.BudgetMax)
	assert.Equal(t, 0.6, cfg.ConfidenceThreshold)
	assert.Equal(t, 5, cfg.ErrorWindow)
	assert.Equal(t, 2, cfg.HardErrorMin)
	assert.Equal(t, 3, cfg.NullGainWindow)
	assert.Equal(t, 800, cfg.SmallBudgetTokens)
	assert.Equal(t, 12*time.Second, cfg.GateTime)
}

func TestConfig_Clamped(t *testing.T) {
	type input struct {
		budget int
	}

	type expected struct {
		budget int
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{name: "below minimum", input: input{budget: 0}, expected: expected{budget: 2}},
		{name: "at minimum", input: input{budget: 2}, expected: expected{budget: 2}},
		{name: "in range", input: input{budget: 6}, expected: expected{budget: 6}},
		{name: "at maximum", input: input{budget: 10}, expected: expected{budget: 10}},
		{name: "above maximum", input: input{budget: 11}, expected: expected{budget: 10}},
		{name: "negative", input: input{budget: -4}, expected: expected{budget: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Budget = tc.input.budget

			assert.Equal(t, tc.expected.budget, cfg.clamped().Budget)
		})
	}
}

func TestConfig_Apply(t *testing.T) {
	intp := func(v int) *int { return &v }
	floatp := func(v float64) *float64 { return &v }
	durp := func(v time.Duration) *time.Duration { return &v }

	type input struct {
		patch ConfigPatch
	}

	type expected struct {
		config Config
	}

	base := DefaultConfig()

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "empty patch changes nothing",
			input:    input{patch: ConfigPatch{}},
			expected: expected{config: base},
		},
		{
			name:  "budget patch is clamped",
			input: input{patch: ConfigPatch{Budget: intp(42)}},
			expected: expected{config: func() Config {
				c := base
				c.Budget = 10
				return c
			}()},
		},
		{
			name: "all fields patched",
			input: input{patch: ConfigPatch{
				Budget:              intp(5),
				ConfidenceThreshold: floatp(0.75),
				ErrorWindow:         intp(8),
				HardErrorMin:        intp(3),
				NullGainWindow:      intp(4),
				SmallBudgetTokens:   intp(1200),
				GateTime:            durp(30 * time.Second),
			}},
			expected: expected{config: Config{
				Budget:              5,
				BudgetMin:           2,
				BudgetMax:           10,
				ConfidenceThreshold: 0.75,
				ErrorWindow:         8,
				HardErrorMin:        3,
				NullGainWindow:      4,
				SmallBudgetTokens:   1200,
				GateTime:            30 * time.Second,
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := base.apply(tc.input.patch)

			assert.Equal(t, tc.expected.config, got)
		})
	}
}
