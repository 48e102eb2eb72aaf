package steps

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/systemstart/redeploy/pkg/api"
	"github.com/systemstart/redeploy/pkg/fsync"
	"github.com/systemstart/redeploy/pkg/svcctl"
)

// Collaborators holds the external systems steps delegate to.
type Collaborators struct {
	Services svcctl.Controller
	Files    fsync.Syncer
}

// Factory builds Step implementations for a deployment's pipeline.
type Factory struct {
	Deployment *api.Deployment
	Exclusions []string // merged exclusion set, fixed for the run
	Collab     Collaborators
	DryRun     bool // force dry-run on all sync steps
}

// NewStep creates a Step implementation from a StepConfig.
func (f *Factory) NewStep(cfg api.StepConfig) (Step, error) {
	switch cfg.Type {
	case api.StepTypeServiceStop:
		return NewServiceStopStep(cfg.Name, cfg.ContinueOnFailure, f.Deployment.ServiceFor(cfg), f.Collab.Services), nil
	case api.StepTypeServiceStart:
		return NewServiceStartStep(cfg.Name, cfg.ContinueOnFailure, f.Deployment.ServiceFor(cfg), f.Collab.Services), nil
	case api.StepTypeSync:
		return f.newSyncStep(cfg), nil
	case api.StepTypeCommand:
		dir := cfg.Command.Dir
		if dir == "" {
			dir = f.Deployment.Dir
		}
		return NewCommandStep(cfg.Name, cfg.ContinueOnFailure, cfg.Command.Program, cfg.Command.Args, dir), nil
	default:
		return nil, fmt.Errorf("unknown step type: %s", cfg.Type)
	}
}

func (f *Factory) newSyncStep(cfg api.StepConfig) Step {
	src := f.resolvePath(f.Deployment.SyncSourceFor(cfg))
	dst := f.resolvePath(f.Deployment.SyncDestinationFor(cfg))

	exclusions := f.Exclusions
	if cfg.Sync != nil && len(cfg.Sync.Exclude) > 0 {
		merged := append(slices.Clone(exclusions), cfg.Sync.Exclude...)
		slices.Sort(merged)
		exclusions = slices.Compact(merged)
	}

	opts := fsync.DeployDefaults()
	if f.DryRun || cfg.Sync != nil && cfg.Sync.DryRun {
		opts.DryRun = true
	}

	return NewSyncStep(cfg.Name, cfg.ContinueOnFailure, src, dst, exclusions, opts, f.Collab.Files)
}

// resolvePath makes relative paths relative to the deployment file's
// directory, so runs behave the same from any working directory.
func (f *Factory) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.Deployment.Dir, p)
}
