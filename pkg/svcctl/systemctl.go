package svcctl

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
)

// Controller manages the lifecycle of a named system service.
type Controller interface {
	Stop(service string) error
	Start(service string) error
}

// Systemctl controls services through the systemctl binary.
type Systemctl struct{}

func (Systemctl) Stop(service string) error {
	return runSystemctl("stop", service)
}

func (Systemctl) Start(service string) error {
	return runSystemctl("start", service)
}

func runSystemctl(action, service string) error {
	if _, err := exec.LookPath("systemctl"); err != nil {
		return fmt.Errorf("systemctl binary not found in PATH: %w", err)
	}

	slog.Info("running systemctl", "action", action, "service", service)

	cmd := exec.Command("systemctl", action, service)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("systemctl %s %s failed: %w\nstderr: %s", action, service, err, stderr.String())
	}

	return nil
}
