package steps

import "errors"

// Failure classes surfaced by the built-in steps, matchable with errors.Is.
var (
	ErrServiceStop  = errors.New("service stop failed")
	ErrSync         = errors.New("sync failed")
	ErrServiceStart = errors.New("service start failed")
)

// Step is the interface all deployment steps implement. Run blocks until
// the step's external action completes or fails.
type Step interface {
	Name() string
	// ContinueOnFailure reports whether the sequencer should keep going
	// when this step fails.
	ContinueOnFailure() bool
	Run() error
}

type base struct {
	name      string
	onFailure bool
}

func (b base) Name() string            { return b.name }
func (b base) ContinueOnFailure() bool { return b.onFailure }
