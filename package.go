// Package director implements the decision gate for a two-tier agent
// architecture: a cheap, fast navigator takes many small actions while an
// expensive planner is invoked only when warranted.
//
// After every navigator action the [Director] decides whether the navigator
// may continue unsupervised or the planner must re-evaluate, balancing cost
// and latency against the risk of the navigator looping, failing silently,
// or acting on stale context. Decisions come from three sources, in order:
// a mandatory initial planning pass, a fixed-priority chain of escalation
// triggers over a bounded history window, and a step budget between planner
// calls.
//
// # Quick Start
//
//	gate, err := director.New(director.DefaultConfig(), director.DefaultHistoryCapacity)
//	if err != nil {
//	    return err
//	}
//
//	for {
//	    action := navigateOnce() // caller-built director.ActionRecord
//	    decision := gate.OnNavigatorStep(action)
//	    if decision.CallPlanner {
//	        verdict := runPlanner(decision.Reason, gate.History())
//	        gate.OnPlannerReview(verdict)
//	    }
//	}
//
// The runner subpackage provides this control loop ready-made for anything
// implementing its Navigator and Planner interfaces, with hook dispatch for
// logging (observe) and decision audit (journal). The planners subpackage
// has an LLM-backed Planner, and configload reads gate settings from
// validated YAML or JSON files.
//
// # Concurrency
//
// A Director is deliberately single-threaded: each OnNavigatorStep call
// runs to completion synchronously and callers must serialize access,
// typically by owning one Director per active task. The Director performs
// no I/O and takes no time measurements of its own; all telemetry arrives
// on the ActionRecord.
package director
