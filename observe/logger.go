// Package observe provides logging hooks for gating activity.
package observe

import (
	"context"

	"github.com/navikit/director"
	"go.uber.org/zap"
)

// Logger logs gate decisions, planner reviews, and run errors through a zap
// logger. Register it with the runner's hook registry:
//
//	registry := hooks.NewRegistry()
//	registry.Register(observe.NewLogger(logger))
//
// Continue decisions are logged at debug level to keep steady-state runs
// quiet; escalations, reviews, and errors are logged at info and above.
type Logger struct {
	log *zap.Logger
}

// NewLogger creates a Logger writing to the given zap logger.
func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

// OnDecision implements director.DecisionHook.
func (l *Logger) OnDecision(_ context.Context, event director.DecisionEvent) {
	if !event.Decision.CallPlanner {
		l.log.Debug("navigator continues",
			zap.Int("step", event.Step),
			zap.String("url", event.Action.URL),
			zap.Int("budget", event.Decision.Budget),
		)
		return
	}
	l.log.Info("planner invoked",
		zap.Int("step", event.Step),
		zap.String("reason", string(event.Decision.Reason)),
		zap.String("url", event.Action.URL),
		zap.Int("budget", event.Decision.Budget),
	)
}

// OnPlannerReview implements director.PlannerReviewHook.
func (l *Logger) OnPlannerReview(_ context.Context, event director.PlannerReviewEvent) {
	l.log.Info("planner review",
		zap.Int("step", event.Step),
		zap.String("reason", string(event.Reason)),
		zap.String("verdict", string(event.Verdict)),
	)
}

// OnError implements director.ErrorHook.
func (l *Logger) OnError(_ context.Context, event director.ErrorEvent) {
	l.log.Error("run failed",
		zap.Int("step", event.Step),
		zap.Error(event.Err),
	)
}

// Compile-time checks.
var (
	_ director.DecisionHook      = (*Logger)(nil)
	_ director.PlannerReviewHook = (*Logger)(nil)
	_ director.ErrorHook         = (*Logger)(nil)
)
