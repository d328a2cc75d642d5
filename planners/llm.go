// Package planners provides Planner implementations for the runner.
package planners

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/navikit/director"
	"github.com/navikit/director/runner"
	"github.com/tmc/langchaingo/llms"
)

const reviewTemplateText = `You are the planner supervising a fast browser navigation agent.

Task:
{{.Task}}

The gate escalated with reason: {{.Reason}}
The navigator may take up to {{.Budget}} more steps before the next mandatory review.

Recent steps (oldest first):
{{- range .History}}
- url={{.URL}} success={{.Success}} confidence={{printf "%.2f" .Confidence}} entities={{len .NewEntities}}{{if .Error}} error={{.Error.Kind}}:{{.Error.Code}}{{end}}{{if .Risky}} risky{{end}}
{{- end}}

Assess whether the current approach is working and give the navigator concise
guidance for its next steps.

Respond in exactly this format:
verdict: good|medium|bad
guidance: <one or two sentences>
`

// DefaultReviewTemplate renders the review prompt sent to the model.
// The template executes against a [runner.ReviewRequest].
var DefaultReviewTemplate = template.Must(
	template.New("review").Parse(reviewTemplateText),
)

// LLM is a [runner.Planner] backed by a langchaingo model.
//
// It renders the gate's recent history into a review prompt, sends it as a
// single completion, and parses a verdict line plus free-form guidance from
// the response. Any [llms.Model] works:
//
//	model, _ := openai.New()
//	planner := planners.NewLLM(model).
//	    WithCallOptions(llms.WithTemperature(0.2))
//
// Missing or unrecognized verdicts degrade to [director.VerdictMedium]
// rather than failing the run: a sloppy planner response is still a usable
// review.
type LLM struct {
	model    llms.Model
	template *template.Template
	opts     []llms.CallOption
}

// NewLLM creates an LLM planner with the default review template.
func NewLLM(model llms.Model) *LLM {
	return &LLM{
		model:    model,
		template: DefaultReviewTemplate,
	}
}

// WithTemplate sets a custom review prompt template. The template executes
// against a [runner.ReviewRequest]. Returns the planner for chaining.
func (p *LLM) WithTemplate(tmpl *template.Template) *LLM {
	p.template = tmpl
	return p
}

// WithCallOptions sets langchaingo call options applied to every review
// call. Returns the planner for chaining.
func (p *LLM) WithCallOptions(opts ...llms.CallOption) *LLM {
	p.opts = opts
	return p
}

// Review implements runner.Planner.
func (p *LLM) Review(ctx context.Context, req runner.ReviewRequest) (*runner.Review, error) {
	var prompt strings.Builder
	if err := p.template.Execute(&prompt, req); err != nil {
		return nil, fmt.Errorf("planners: render review prompt: %w", err)
	}

	output, err := llms.GenerateFromSinglePrompt(ctx, p.model, prompt.String(), p.opts...)
	if err != nil {
		return nil, fmt.Errorf("planners: model call: %w", err)
	}

	return parseReview(output), nil
}

// parseReview extracts the verdict line and guidance from model output.
func parseReview(output string) *runner.Review {
	review := &runner.Review{Verdict: director.VerdictMedium}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "verdict:"); ok {
			switch director.Verdict(strings.ToLower(strings.TrimSpace(rest))) {
			case director.VerdictGood:
				review.Verdict = director.VerdictGood
			case director.VerdictBad:
				review.Verdict = director.VerdictBad
			case director.VerdictMedium:
				review.Verdict = director.VerdictMedium
			}
			continue
		}
		if rest, ok := strings.CutPrefix(line, "guidance:"); ok {
			review.Guidance = strings.TrimSpace(rest)
		}
	}
	if review.Guidance == "" {
		review.Guidance = strings.TrimSpace(output)
	}
	return review
}

// Compile-time check.
var _ runner.Planner = (*LLM)(nil)
