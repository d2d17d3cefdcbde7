// Package command defines the capability contract for mini-language
// commands: parameter schemas, execution results, the session context
// commands mutate, and the registry that owns them.
package command

import (
	"github.com/krayonlabs/krayon/pkgs/value"
)

// ParameterSpec describes one expected parameter of a command.
type ParameterSpec struct {
	Name        string      // unique within one command's schema
	Type        string      // "number", "string", "bool", "any"
	Required    bool        // whether the parameter must be supplied
	Default     value.Value // applied before Execute when absent and optional
	Description string      // human-readable description
}

// Command is the contract every mini-language command implements.
// Instances are immutable configuration plus behavior, shared read-only
// across invocations.
type Command interface {
	// Name returns the command name used for registry lookup.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Parameters returns the declared parameter schema.
	Parameters() []ParameterSpec

	// Validate checks a supplied parameter mapping against the schema.
	// Most commands delegate to ValidateParams.
	Validate(params map[string]value.Value) Result

	// Execute runs the command. Defaults have already been applied: the
	// command sees a default, never an absence, for optional parameters.
	Execute(params map[string]value.Value, ctx *Context) Result
}

// ValidateParams is the default validation contract: every required
// parameter must be present, and every supplied parameter must match its
// declared type (unless declared "any"). Parameter names not covered by
// the schema are permitted; extra arguments are not an error.
func ValidateParams(specs []ParameterSpec, params map[string]value.Value) Result {
	for _, spec := range specs {
		supplied, present := params[spec.Name]
		if !present {
			if spec.Required {
				return Failf("missing required parameter %q", spec.Name)
			}
			continue
		}
		if !supplied.MatchesType(spec.Type) {
			return Failf("parameter %q expects %s, got %s",
				spec.Name, spec.Type, supplied.TypeName())
		}
	}
	return Ok("")
}

// ApplyDefaults returns a copy of params with every absent optional
// parameter filled from its spec's default. The input mapping is not
// modified.
func ApplyDefaults(specs []ParameterSpec, params map[string]value.Value) map[string]value.Value {
	out := make(map[string]value.Value, len(params)+len(specs))
	for name, v := range params {
		out[name] = v
	}
	for _, spec := range specs {
		if _, present := out[spec.Name]; !present && !spec.Required {
			out[spec.Name] = spec.Default
		}
	}
	return out
}

// Usage renders a one-line usage string for help output, e.g.
// create_element(type, name, [x], [y]).
func Usage(cmd Command) string {
	usage := cmd.Name() + "("
	for i, spec := range cmd.Parameters() {
		if i > 0 {
			usage += ", "
		}
		if spec.Required {
			usage += spec.Name
		} else {
			usage += "[" + spec.Name + "]"
		}
	}
	return usage + ")"
}
