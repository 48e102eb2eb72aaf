package api

import (
	"strings"
	"testing"
)

func validDeployment() *Deployment {
	return &Deployment{
		Service:     "fszn",
		Source:      "./build",
		Destination: "/srv/fszn",
		Pipeline:    DefaultPipeline(),
	}
}

func TestValidate_ValidDeployment(t *testing.T) {
	if err := validDeployment().Validate(); err != nil {
		t.Fatalf("expected valid deployment, got error: %v", err)
	}
}

func TestValidate_EmptyPipeline(t *testing.T) {
	d := &Deployment{Service: "fszn"}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for empty pipeline")
	}
	if !strings.Contains(err.Error(), "no steps") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingStepName(t *testing.T) {
	d := validDeployment()
	d.Pipeline = []StepConfig{{Type: StepTypeServiceStop}}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DuplicateStepName(t *testing.T) {
	d := validDeployment()
	d.Pipeline = []StepConfig{
		{Name: "a", Type: StepTypeServiceStop},
		{Name: "a", Type: StepTypeServiceStart},
	}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate name")
	}
	if !strings.Contains(err.Error(), "duplicate step name") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownStepType(t *testing.T) {
	d := validDeployment()
	d.Pipeline = []StepConfig{{Name: "a", Type: "reboot"}}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
	if !strings.Contains(err.Error(), "unknown type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ServiceStepWithoutService(t *testing.T) {
	d := validDeployment()
	d.Service = ""
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for missing service name")
	}
	if !strings.Contains(err.Error(), "service name is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ServiceStepOverrideSatisfies(t *testing.T) {
	d := validDeployment()
	d.Service = ""
	d.Pipeline = []StepConfig{
		{Name: "stop", Type: StepTypeServiceStop, Service: &ServiceConfig{Name: "other"}},
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("expected valid deployment, got error: %v", err)
	}
}

func TestValidate_SyncStepWithoutDestination(t *testing.T) {
	d := validDeployment()
	d.Destination = ""
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for missing destination")
	}
	if !strings.Contains(err.Error(), "sync destination is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SyncStepWithoutSource(t *testing.T) {
	d := validDeployment()
	d.Source = ""
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !strings.Contains(err.Error(), "sync source is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_CommandStepWithoutProgram(t *testing.T) {
	d := validDeployment()
	d.Pipeline = []StepConfig{
		{Name: "migrate", Type: StepTypeCommand, Command: &CommandConfig{}},
	}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for missing program")
	}
	if !strings.Contains(err.Error(), "command.program is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_CommandStepWithoutConfig(t *testing.T) {
	d := validDeployment()
	d.Pipeline = []StepConfig{
		{Name: "migrate", Type: StepTypeCommand},
	}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for missing command config")
	}
	if !strings.Contains(err.Error(), "command config is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
