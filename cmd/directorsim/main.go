// Package main provides an interactive simulator for exercising a Director
// gate with hand-typed synthetic navigator actions.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/navikit/director"
	"github.com/navikit/director/configload"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

const helpText = `Commands:
  step <url> [flags]   feed one navigator action through the gate
      flags: fail            mark the step unsuccessful
             conf=<0..1>     self-reported confidence (default 0.9)
             tokens=<n>      tokens consumed (default 100)
             ms=<n>          step runtime in milliseconds (default 500)
             dom=<hash>      DOM fingerprint (default derived from url)
             entities=a,b    new entities discovered
             hard=<code>     attach a hard error
             soft=<code>     attach a soft error
             risky           flag the action as high-risk
             ctx             flag an out-of-band context change
  review <good|medium|bad>   report a planner verdict back to the gate
  config                     print the current gate configuration
  load <path>                apply a YAML/JSON settings file
  history                    print the gate's action window
  help                       show this help
  q                          quit`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	gate, err := director.New(director.DefaultConfig(), director.DefaultHistoryCapacity)
	if err != nil {
		return err
	}

	rl, err := readline.New(colorCyan + "directorsim> " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Println(helpText)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			return nil
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil
		case "help":
			fmt.Println(helpText)
		case "config":
			printConfig(gate.Config())
		case "history":
			printHistory(gate.History())
		case "load":
			if len(fields) != 2 {
				fmt.Println(colorYellow + "usage: load <path>" + colorReset)
				continue
			}
			patch, err := configload.Load(fields[1])
			if err != nil {
				fmt.Printf("%s%v%s\n", colorRed, err, colorReset)
				continue
			}
			gate.SetConfig(patch)
			printConfig(gate.Config())
		case "review":
			if len(fields) != 2 {
				fmt.Println(colorYellow + "usage: review <good|medium|bad>" + colorReset)
				continue
			}
			gate.OnPlannerReview(director.Verdict(fields[1]))
			fmt.Printf("%sverdict %q recorded%s\n", colorDim, fields[1], colorReset)
		case "step":
			if len(fields) < 2 {
				fmt.Println(colorYellow + "usage: step <url> [flags]" + colorReset)
				continue
			}
			action, err := parseAction(fields[1], fields[2:])
			if err != nil {
				fmt.Printf("%s%v%s\n", colorRed, err, colorReset)
				continue
			}
			printDecision(gate.OnNavigatorStep(action))
		default:
			fmt.Printf("%sunknown command %q, try 'help'%s\n", colorYellow, fields[0], colorReset)
		}
	}
}

// parseAction builds an ActionRecord from command flags.
func parseAction(url string, flags []string) (director.ActionRecord, error) {
	action := director.ActionRecord{
		ActionID:   uuid.NewString(),
		URL:        url,
		DOMHash:    "dom-" + url,
		Success:    true,
		Confidence: 0.9,
		Tokens:     100,
		Runtime:    500 * time.Millisecond,
	}

	for _, flag := range flags {
		key, value, hasValue := strings.Cut(flag, "=")
		switch {
		case key == "fail":
			action.Success = false
		case key == "risky":
			action.Risky = true
		case key == "ctx":
			action.ContextChange = true
		case key == "conf" && hasValue:
			c, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return action, fmt.Errorf("bad conf value %q", value)
			}
			action.Confidence = c
		case key == "tokens" && hasValue:
			n, err := strconv.Atoi(value)
			if err != nil {
				return action, fmt.Errorf("bad tokens value %q", value)
			}
			action.Tokens = n
		case key == "ms" && hasValue:
			n, err := strconv.Atoi(value)
			if err != nil {
				return action, fmt.Errorf("bad ms value %q", value)
			}
			action.Runtime = time.Duration(n) * time.Millisecond
		case key == "dom" && hasValue:
			action.DOMHash = value
		case key == "entities" && hasValue:
			action.NewEntities = strings.Split(value, ",")
		case key == "hard" && hasValue:
			code, err := strconv.Atoi(value)
			if err != nil {
				return action, fmt.Errorf("bad hard error code %q", value)
			}
			action.Error = &director.ActionError{Code: code, Kind: director.ErrorHard}
		case key == "soft" && hasValue:
			code, err := strconv.Atoi(value)
			if err != nil {
				return action, fmt.Errorf("bad soft error code %q", value)
			}
			action.Error = &director.ActionError{Code: code, Kind: director.ErrorSoft}
		default:
			return action, fmt.Errorf("unknown flag %q", flag)
		}
	}
	return action, nil
}

func printDecision(d director.Decision) {
	if d.CallPlanner {
		fmt.Printf("%sCALL PLANNER%s reason=%s budget=%d\n",
			colorGreen, colorReset, d.Reason, d.Budget)
		return
	}
	fmt.Printf("%scontinue%s budget=%d\n", colorDim, colorReset, d.Budget)
}

func printConfig(cfg director.Config) {
	fmt.Printf("budget=%d (min=%d max=%d)\n", cfg.Budget, cfg.BudgetMin, cfg.BudgetMax)
	fmt.Printf("confidence_threshold=%.2f\n", cfg.ConfidenceThreshold)
	fmt.Printf("error_window=%d hard_error_min=%d null_gain_window=%d\n",
		cfg.ErrorWindow, cfg.HardErrorMin, cfg.NullGainWindow)
	fmt.Printf("small_budget_tokens=%d gate_time=%s\n", cfg.SmallBudgetTokens, cfg.GateTime)
}

func printHistory(history []director.ActionRecord) {
	if len(history) == 0 {
		fmt.Println(colorDim + "(empty)" + colorReset)
		return
	}
	for i, r := range history {
		status := colorGreen + "ok" + colorReset
		if !r.Success {
			status = colorRed + "fail" + colorReset
		}
		fmt.Printf("%2d. %s %s conf=%.2f tokens=%d entities=%d\n",
			i+1, r.URL, status, r.Confidence, r.Tokens, len(r.NewEntities))
	}
}
