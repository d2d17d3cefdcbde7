package builtins

import (
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// SetProperty implements the set_property command.
type SetProperty struct{}

// Name returns the command name.
func (s *SetProperty) Name() string { return "set_property" }

// Description returns a human-readable description.
func (s *SetProperty) Description() string {
	return "Set a property of a scene element"
}

// Parameters returns the declared parameter schema.
func (s *SetProperty) Parameters() []command.ParameterSpec {
	return []command.ParameterSpec{
		{Name: "id", Type: "string", Required: true, Description: "Element ID"},
		{Name: "property", Type: "string", Required: true, Description: "Property name"},
		{Name: "value", Type: "any", Required: true, Description: "Property value"},
	}
}

// Validate checks the supplied parameters against the schema.
func (s *SetProperty) Validate(params map[string]value.Value) command.Result {
	return command.ValidateParams(s.Parameters(), params)
}

// Execute writes one keyed property of an existing element.
func (s *SetProperty) Execute(params map[string]value.Value, ctx *command.Context) command.Result {
	id, _ := params["id"].AsString()
	property, _ := params["property"].AsString()

	if !elementExists(ctx, id) {
		return command.Failf("no element with id %q", id)
	}

	ctx.SetVariable(elementKey(id, property), params["value"])
	return command.Ok("set " + property + " on element '" + id + "'")
}
