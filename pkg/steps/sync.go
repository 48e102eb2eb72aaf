package steps

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/redeploy/pkg/fsync"
)

type syncStep struct {
	base
	src        string
	dst        string
	exclusions []string
	opts       fsync.Options
	syncer     fsync.Syncer
}

// NewSyncStep creates a step that mirrors src into dst, skipping the
// exclusion patterns.
func NewSyncStep(name string, continueOnFailure bool, src, dst string, exclusions []string, opts fsync.Options, syncer fsync.Syncer) Step {
	return &syncStep{
		base:       base{name: name, onFailure: continueOnFailure},
		src:        src,
		dst:        dst,
		exclusions: exclusions,
		opts:       opts,
		syncer:     syncer,
	}
}

func (s *syncStep) Run() error {
	slog.Info("syncing tree", "step", s.name, "source", s.src, "destination", s.dst, "exclusions", len(s.exclusions), "dryRun", s.opts.DryRun)
	if err := s.syncer.Sync(s.src, s.dst, s.exclusions, s.opts); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", ErrSync, s.src, s.dst, err)
	}
	return nil
}
