// Package config loads the CLI's YAML configuration: a session file
// location, whether to attach a scene, and variables preset into the
// execution context before any command runs.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// Config is the top-level configuration document.
type Config struct {
	// SessionFile is where the context snapshot is persisted. Empty
	// disables persistence.
	SessionFile string `yaml:"session_file"`

	// AttachScene controls whether a scene collaborator is attached to
	// the context, enabling transform commands to record into it.
	AttachScene bool `yaml:"attach_scene"`

	// Variables are preset into the context before execution. YAML
	// scalars map onto the interpreter's value types; anything else is
	// rejected at load time.
	Variables map[string]interface{} `yaml:"variables"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{AttachScene: true}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// ApplyVariables converts the preset variables to interpreter values and
// sets them on the context.
func (c *Config) ApplyVariables(ctx *command.Context) error {
	for name, raw := range c.Variables {
		v, err := fromYAML(raw)
		if err != nil {
			return errors.Wrapf(err, "variable %q", name)
		}
		ctx.SetVariable(name, v)
	}
	return nil
}

// fromYAML maps a decoded YAML scalar onto a value. yaml.v3 decodes
// integers as int and floats as float64.
func fromYAML(raw interface{}) (value.Value, error) {
	switch v := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Number(float64(v)), nil
	case int64:
		return value.Number(float64(v)), nil
	case float64:
		return value.Number(v), nil
	case string:
		return value.String(v), nil
	default:
		return value.Null(), errors.Errorf("unsupported variable type %T", raw)
	}
}
