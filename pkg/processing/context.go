package processing

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/systemstart/redeploy/pkg/api"
	"gopkg.in/yaml.v3"
)

// LoadContextFile reads a YAML file and returns it as a map.
func LoadContextFile(filename string) (map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading context file: %w", err)
	}

	var ctx map[string]any
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parsing context file: %w", err)
	}

	if ctx == nil {
		ctx = make(map[string]any)
	}

	return ctx, nil
}

// MergeContext performs a shallow merge of local context over global
// context. Local keys override global keys at the top level.
func MergeContext(global, local map[string]any) map[string]any {
	merged := make(map[string]any, len(global)+len(local))
	maps.Copy(merged, global)
	maps.Copy(merged, local)
	return merged
}

// RenderConfig renders template expressions in the deployment's string
// fields against the merged context. Rendering happens once, before any
// step runs.
func RenderConfig(d *api.Deployment, globalContext map[string]any) error {
	data := MergeContext(globalContext, d.Context)

	fields := []*string{&d.Service, &d.Source, &d.Destination, &d.ExclusionsFile}
	for i := range d.Exclude {
		fields = append(fields, &d.Exclude[i])
	}
	for i := range d.Pipeline {
		fields = append(fields, stepFields(&d.Pipeline[i])...)
	}

	for _, field := range fields {
		rendered, err := renderString(*field, data)
		if err != nil {
			return err
		}
		*field = rendered
	}

	return nil
}

func stepFields(cfg *api.StepConfig) []*string {
	var fields []*string
	if cfg.Service != nil {
		fields = append(fields, &cfg.Service.Name)
	}
	if cfg.Sync != nil {
		fields = append(fields, &cfg.Sync.Source, &cfg.Sync.Destination)
		for i := range cfg.Sync.Exclude {
			fields = append(fields, &cfg.Sync.Exclude[i])
		}
	}
	if cfg.Command != nil {
		fields = append(fields, &cfg.Command.Program, &cfg.Command.Dir)
		for i := range cfg.Command.Args {
			fields = append(fields, &cfg.Command.Args[i])
		}
	}
	return fields
}

func renderString(s string, data map[string]any) (string, error) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	tmpl, err := template.New("config").Funcs(sprig.FuncMap()).Parse(s)
	if err != nil {
		return "", fmt.Errorf("parsing template %q: %w", s, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %q: %w", s, err)
	}

	return buf.String(), nil
}
