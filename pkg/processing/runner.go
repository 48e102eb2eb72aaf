package processing

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/systemstart/redeploy/pkg/api"
	"github.com/systemstart/redeploy/pkg/steps"
)

// RunOptions controls how a deployment run is executed.
type RunOptions struct {
	Progress io.Writer // per-step progress lines; nil discards them
	DryRun   bool      // force dry-run on all sync steps
}

// RunDeployment prepares and executes one deployment run: renders template
// expressions in the config, loads the exclusion set, constructs the
// pipeline steps, and runs them in order. A non-nil error means the run
// never started; step failures are reported through the RunResult.
func RunDeployment(d *api.Deployment, globalContext map[string]any, collab steps.Collaborators, opts RunOptions) (RunResult, error) {
	if err := RenderConfig(d, globalContext); err != nil {
		return RunResult{}, fmt.Errorf("rendering deployment config: %w", err)
	}

	exclusions, err := d.Exclusions()
	if err != nil {
		return RunResult{}, fmt.Errorf("loading exclusions: %w", err)
	}

	factory := &steps.Factory{
		Deployment: d,
		Exclusions: exclusions,
		Collab:     collab,
		DryRun:     opts.DryRun,
	}

	stepList := make([]steps.Step, 0, len(d.Pipeline))
	for _, cfg := range d.Pipeline {
		step, err := factory.NewStep(cfg)
		if err != nil {
			return RunResult{}, fmt.Errorf("creating step %q: %w", cfg.Name, err)
		}
		stepList = append(stepList, step)
	}

	slog.Info("executing deployment", "path", d.FilePath, "steps", len(stepList), "exclusions", len(exclusions))

	return Run(stepList, opts.Progress), nil
}
