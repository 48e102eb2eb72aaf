package processing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/systemstart/redeploy/pkg/steps"
)

// RunResult reports the outcome of a deployment run.
type RunResult struct {
	Completed  []string // names of steps that succeeded, in order
	FailedStep string   // empty when the run completed fully
	Err        error    // failure detail from the failed step
}

// Failed reports whether the run halted at a failing step.
func (r RunResult) Failed() bool {
	return r.FailedStep != ""
}

// Run executes steps strictly in order, synchronously. The first failure
// of a step not marked continue-on-failure halts the run immediately; no
// later step is invoked. A progress line is written per step; the
// sequencer performs no other I/O itself.
func Run(stepList []steps.Step, progress io.Writer) RunResult {
	if progress == nil {
		progress = io.Discard
	}

	var result RunResult
	total := len(stepList)

	for i, step := range stepList {
		fmt.Fprintf(progress, "[%d/%d] %s...\n", i+1, total, step.Name())
		slog.Info("running step", "step", step.Name(), "position", i+1, "total", total)

		if err := step.Run(); err != nil {
			if step.ContinueOnFailure() {
				slog.Warn("step failed, continuing", "step", step.Name(), "error", err)
				continue
			}
			slog.Error("step failed", "step", step.Name(), "error", err)
			result.FailedStep = step.Name()
			result.Err = err
			return result
		}

		result.Completed = append(result.Completed, step.Name())
	}

	return result
}
