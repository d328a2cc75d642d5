package planners

import (
	"context"
	"errors"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/navikit/director"
	"github.com/navikit/director/runner"
)

// fakeModel implements llms.Model, replaying a fixed response and capturing
// the prompts it receives.
type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func sampleRequest() runner.ReviewRequest {
	return runner.ReviewRequest{
		Task:   "book a hotel in Lisbon",
		Reason: director.ReasonUncertainty,
		Budget: 3,
		History: []director.ActionRecord{
			{
				URL:        "https://example.com/search",
				Success:    true,
				Confidence: 0.9,
			},
			{
				URL:        "https://example.com/booking",
				Success:    false,
				Confidence: 0.4,
				Error:      &director.ActionError{Code: 500, Kind: director.ErrorHard},
				Risky:      true,
			},
		},
	}
}

func TestLLM_Review(t *testing.T) {
	model := &fakeModel{response: "verdict: good\nguidance: retry the booking form once"}
	planner := NewLLM(model)

	review, err := planner.Review(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, director.VerdictGood, review.Verdict)
	assert.Equal(t, "retry the booking form once", review.Guidance)
}

func TestLLM_PromptContainsRequestDetails(t *testing.T) {
	model := &fakeModel{response: "verdict: medium\nguidance: proceed"}
	planner := NewLLM(model)

	_, err := planner.Review(context.Background(), sampleRequest())
	require.NoError(t, err)

	require.Len(t, model.prompts, 1)
	prompt := model.prompts[0]
	assert.Contains(t, prompt, "book a hotel in Lisbon")
	assert.Contains(t, prompt, "uncertainty")
	assert.Contains(t, prompt, "https://example.com/search")
	assert.Contains(t, prompt, "error=hard:500")
	assert.Contains(t, prompt, "risky")
}

func TestLLM_ModelError(t *testing.T) {
	sentinel := errors.New("rate limited")
	planner := NewLLM(&fakeModel{err: sentinel})

	review, err := planner.Review(context.Background(), sampleRequest())

	assert.Nil(t, review)
	assert.ErrorIs(t, err, sentinel)
}

func TestParseReview(t *testing.T) {
	type input struct {
		output string
	}

	type expected struct {
		verdict  director.Verdict
		guidance string
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:  "well-formed response",
			input: input{output: "verdict: good\nguidance: keep going"},
			expected: expected{
				verdict:  director.VerdictGood,
				guidance: "keep going",
			},
		},
		{
			name:  "bad verdict",
			input: input{output: "verdict: bad\nguidance: start over from the search page"},
			expected: expected{
				verdict:  director.VerdictBad,
				guidance: "start over from the search page",
			},
		},
		{
			name:  "verdict casing and padding are tolerated",
			input: input{output: "  verdict:   GOOD  \nguidance: fine"},
			expected: expected{
				verdict:  director.VerdictGood,
				guidance: "fine",
			},
		},
		{
			name:  "unknown verdict degrades to medium",
			input: input{output: "verdict: excellent\nguidance: carry on"},
			expected: expected{
				verdict:  director.VerdictMedium,
				guidance: "carry on",
			},
		},
		{
			name:  "missing verdict line degrades to medium",
			input: input{output: "guidance: slow down"},
			expected: expected{
				verdict:  director.VerdictMedium,
				guidance: "slow down",
			},
		},
		{
			name:  "free-form response becomes guidance verbatim",
			input: input{output: "  The approach looks fine, continue.  "},
			expected: expected{
				verdict:  director.VerdictMedium,
				guidance: "The approach looks fine, continue.",
			},
		},
		{
			name:  "surrounding prose is ignored",
			input: input{output: "Here is my assessment.\nverdict: bad\nguidance: abandon this site\nThanks!"},
			expected: expected{
				verdict:  director.VerdictBad,
				guidance: "abandon this site",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			review := parseReview(tc.input.output)

			assert.Equal(t, tc.expected.verdict, review.Verdict)
			assert.Equal(t, tc.expected.guidance, review.Guidance)
		})
	}
}

func mustTemplate(t *testing.T, text string) *template.Template {
	t.Helper()
	tmpl, err := template.New("review").Parse(text)
	require.NoError(t, err)
	return tmpl
}

func TestLLM_WithTemplate(t *testing.T) {
	model := &fakeModel{response: "verdict: medium\nguidance: ok"}
	planner := NewLLM(model).WithTemplate(mustTemplate(t, "reason={{.Reason}}"))

	_, err := planner.Review(context.Background(), sampleRequest())
	require.NoError(t, err)

	require.Len(t, model.prompts, 1)
	assert.Equal(t, "reason=uncertainty", model.prompts[0])
}
