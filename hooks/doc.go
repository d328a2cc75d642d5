// Package hooks provides the hook registry used to observe gating activity.
//
// The hook interfaces themselves (DecisionHook, PlannerReviewHook, ...) are
// declared in the director package next to their event types; this package
// only contains the Registry that dispatches events to them.
package hooks
