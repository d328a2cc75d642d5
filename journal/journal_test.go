package journal_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navikit/director"
	"github.com/navikit/director/journal"
)

func TestJournal_RecordsDecisions(t *testing.T) {
	j, err := journal.Open(":memory:")
	require.NoError(t, err)
	defer j.Close()

	ctx := context.Background()
	j.OnDecision(ctx, director.DecisionEvent{
		Step: 1,
		Action: director.ActionRecord{
			ActionID: "a-1",
			URL:      "https://example.com/start",
		},
		Decision: director.Decision{
			CallPlanner: true,
			Reason:      director.ReasonInitial,
			Budget:      3,
		},
	})
	j.OnDecision(ctx, director.DecisionEvent{
		Step: 2,
		Action: director.ActionRecord{
			ActionID: "a-2",
			URL:      "https://example.com/next",
		},
		Decision: director.Decision{
			CallPlanner: false,
			Budget:      3,
		},
	})

	require.NoError(t, j.LastErr())

	entries, err := j.Decisions(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, journal.Entry{
		Step:        1,
		ActionID:    "a-1",
		URL:         "https://example.com/start",
		CallPlanner: true,
		Reason:      director.ReasonInitial,
		Budget:      3,
	}, entries[0])

	assert.Equal(t, journal.Entry{
		Step:        2,
		ActionID:    "a-2",
		URL:         "https://example.com/next",
		CallPlanner: false,
		Reason:      director.Reason(""),
		Budget:      3,
	}, entries[1])
}

func TestJournal_RecordsReviews(t *testing.T) {
	j, err := journal.Open(":memory:")
	require.NoError(t, err)
	defer j.Close()

	j.OnPlannerReview(context.Background(), director.PlannerReviewEvent{
		Step:    4,
		Reason:  director.ReasonBudget,
		Verdict: director.VerdictGood,
	})

	assert.NoError(t, j.LastErr())
}

func TestJournal_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gate.db")
	ctx := context.Background()

	j, err := journal.Open(path)
	require.NoError(t, err)
	j.OnDecision(ctx, director.DecisionEvent{
		Step:     1,
		Action:   director.ActionRecord{ActionID: "a-1", URL: "https://example.com"},
		Decision: director.Decision{CallPlanner: true, Reason: director.ReasonInitial, Budget: 3},
	})
	require.NoError(t, j.LastErr())
	require.NoError(t, j.Close())

	// Reopen and read back.
	j2, err := journal.Open(path)
	require.NoError(t, err)
	defer j2.Close()

	entries, err := j2.Decisions(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a-1", entries[0].ActionID)
}

func TestJournal_WriteErrorDoesNotPanic(t *testing.T) {
	j, err := journal.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, j.Close())

	// Writes after Close fail, but hooks must stay silent and retain the
	// error for later inspection.
	j.OnDecision(context.Background(), director.DecisionEvent{
		Step:     1,
		Action:   director.ActionRecord{ActionID: "a-1"},
		Decision: director.Decision{Budget: 3},
	})

	assert.Error(t, j.LastErr())
}
