package api

const (
	DefaultDeploymentFile = ".deploy.yaml"

	StepTypeServiceStop  = "service-stop"
	StepTypeSync         = "sync"
	StepTypeServiceStart = "service-start"
	StepTypeCommand      = "command"
)

// Deployment is the .deploy.yaml configuration format.
type Deployment struct {
	Service        string         `yaml:"service"`
	Source         string         `yaml:"source"`
	Destination    string         `yaml:"destination"`
	ExclusionsFile string         `yaml:"exclusionsFile"`
	Exclude        []string       `yaml:"exclude"`
	Context        map[string]any `yaml:"context"`
	Pipeline       []StepConfig   `yaml:"pipeline"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// StepConfig defines a single step within a deployment pipeline.
type StepConfig struct {
	Name              string         `yaml:"name"`
	Type              string         `yaml:"type"`
	ContinueOnFailure bool           `yaml:"continueOnFailure"`
	Service           *ServiceConfig `yaml:"service,omitempty"`
	Sync              *SyncConfig    `yaml:"sync,omitempty"`
	Command           *CommandConfig `yaml:"command,omitempty"`
}

// ServiceConfig configures the service-stop and service-start steps.
type ServiceConfig struct {
	Name string `yaml:"name"`
}

// SyncConfig configures the sync step.
type SyncConfig struct {
	Source      string   `yaml:"source"`
	Destination string   `yaml:"destination"`
	Exclude     []string `yaml:"exclude"`
	DryRun      bool     `yaml:"dryRun"`
}

// CommandConfig configures the command step.
type CommandConfig struct {
	Program string   `yaml:"program"`
	Args    []string `yaml:"args"`
	Dir     string   `yaml:"dir"`
}

// DefaultPipeline is the stop -> sync -> start sequence used when a
// deployment does not declare an explicit pipeline.
func DefaultPipeline() []StepConfig {
	return []StepConfig{
		{Name: "stop", Type: StepTypeServiceStop},
		{Name: "sync", Type: StepTypeSync},
		{Name: "start", Type: StepTypeServiceStart},
	}
}

// ServiceFor returns the service name a service step operates on:
// the step's own override, or the deployment-level service.
func (d *Deployment) ServiceFor(cfg StepConfig) string {
	if cfg.Service != nil && cfg.Service.Name != "" {
		return cfg.Service.Name
	}
	return d.Service
}

// SyncSourceFor returns the source tree a sync step copies from.
func (d *Deployment) SyncSourceFor(cfg StepConfig) string {
	if cfg.Sync != nil && cfg.Sync.Source != "" {
		return cfg.Sync.Source
	}
	return d.Source
}

// SyncDestinationFor returns the destination a sync step mirrors into.
func (d *Deployment) SyncDestinationFor(cfg StepConfig) string {
	if cfg.Sync != nil && cfg.Sync.Destination != "" {
		return cfg.Sync.Destination
	}
	return d.Destination
}
