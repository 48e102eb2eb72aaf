package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDeployment reads a .deploy.yaml file, sets Dir/FilePath, applies the
// default pipeline when none is declared, and validates it.
func LoadDeployment(filename string) (*Deployment, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading deployment file: %w", err)
	}

	var d Deployment
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing deployment file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	d.FilePath = absPath
	d.Dir = filepath.Dir(absPath)

	if len(d.Pipeline) == 0 {
		d.Pipeline = DefaultPipeline()
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validating deployment %s: %w", filename, err)
	}

	return &d, nil
}
