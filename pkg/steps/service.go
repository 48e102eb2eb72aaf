package steps

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/redeploy/pkg/svcctl"
)

type stopStep struct {
	base
	service string
	ctl     svcctl.Controller
}

// NewServiceStopStep creates a step that stops a service.
func NewServiceStopStep(name string, continueOnFailure bool, service string, ctl svcctl.Controller) Step {
	return &stopStep{
		base:    base{name: name, onFailure: continueOnFailure},
		service: service,
		ctl:     ctl,
	}
}

func (s *stopStep) Run() error {
	slog.Info("stopping service", "step", s.name, "service", s.service)
	if err := s.ctl.Stop(s.service); err != nil {
		return fmt.Errorf("%w: service %s: %v", ErrServiceStop, s.service, err)
	}
	return nil
}

type startStep struct {
	base
	service string
	ctl     svcctl.Controller
}

// NewServiceStartStep creates a step that starts a service.
func NewServiceStartStep(name string, continueOnFailure bool, service string, ctl svcctl.Controller) Step {
	return &startStep{
		base:    base{name: name, onFailure: continueOnFailure},
		service: service,
		ctl:     ctl,
	}
}

func (s *startStep) Run() error {
	slog.Info("starting service", "step", s.name, "service", s.service)
	if err := s.ctl.Start(s.service); err != nil {
		return fmt.Errorf("%w: service %s: %v", ErrServiceStart, s.service, err)
	}
	return nil
}
