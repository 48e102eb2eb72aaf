package steps

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
)

type commandStep struct {
	base
	program string
	args    []string
	dir     string
}

// NewCommandStep creates a step that runs an external program.
func NewCommandStep(name string, continueOnFailure bool, program string, args []string, dir string) Step {
	return &commandStep{
		base:    base{name: name, onFailure: continueOnFailure},
		program: program,
		args:    args,
		dir:     dir,
	}
}

func (s *commandStep) Run() error {
	if _, err := exec.LookPath(s.program); err != nil {
		return fmt.Errorf("%s binary not found in PATH: %w", s.program, err)
	}

	slog.Info("running command", "step", s.name, "program", s.program, "args", s.args)

	cmd := exec.Command(s.program, s.args...)
	cmd.Dir = s.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s failed: %w\nstderr: %s", s.program, err, stderr.String())
	}

	return nil
}
