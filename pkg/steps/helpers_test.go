package steps

import (
	"github.com/systemstart/redeploy/pkg/fsync"
)

// fakeController records service control invocations and can be told to
// fail a specific action.
type fakeController struct {
	calls    []string
	stopErr  error
	startErr error
}

func (f *fakeController) Stop(service string) error {
	f.calls = append(f.calls, "stop "+service)
	return f.stopErr
}

func (f *fakeController) Start(service string) error {
	f.calls = append(f.calls, "start "+service)
	return f.startErr
}

// fakeSyncer records the effective sync request it received.
type fakeSyncer struct {
	src        string
	dst        string
	exclusions []string
	opts       fsync.Options
	calls      int
	err        error
}

func (f *fakeSyncer) Sync(src, dst string, exclusions []string, opts fsync.Options) error {
	f.calls++
	f.src = src
	f.dst = dst
	f.exclusions = exclusions
	f.opts = opts
	return f.err
}
