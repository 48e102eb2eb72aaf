package api

import (
	"fmt"
)

var validStepTypes = map[string]bool{
	StepTypeServiceStop:  true,
	StepTypeSync:         true,
	StepTypeServiceStart: true,
	StepTypeCommand:      true,
}

// Validate checks the deployment configuration for errors.
func (d *Deployment) Validate() error {
	if len(d.Pipeline) == 0 {
		return fmt.Errorf("pipeline has no steps")
	}

	names := make(map[string]int)

	for i, step := range d.Pipeline {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i)
		}
		if prev, exists := names[step.Name]; exists {
			return fmt.Errorf("step %d: duplicate step name %q (first defined at step %d)", i, step.Name, prev)
		}
		names[step.Name] = i

		if !validStepTypes[step.Type] {
			return fmt.Errorf("step %q: unknown type %q", step.Name, step.Type)
		}

		if err := d.validateStepConfig(step); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}

	return nil
}

func (d *Deployment) validateStepConfig(step StepConfig) error {
	switch step.Type {
	case StepTypeServiceStop, StepTypeServiceStart:
		if d.ServiceFor(step) == "" {
			return fmt.Errorf("a service name is required (set service at the deployment or step level)")
		}
	case StepTypeSync:
		if d.SyncSourceFor(step) == "" {
			return fmt.Errorf("a sync source is required (set source at the deployment or step level)")
		}
		if d.SyncDestinationFor(step) == "" {
			return fmt.Errorf("a sync destination is required (set destination at the deployment or step level)")
		}
	case StepTypeCommand:
		if step.Command == nil {
			return fmt.Errorf("command config is required")
		}
		if step.Command.Program == "" {
			return fmt.Errorf("command.program is required")
		}
	}
	return nil
}
