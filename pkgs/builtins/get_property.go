package builtins

import (
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// GetProperty implements the get_property command.
type GetProperty struct{}

// Name returns the command name.
func (g *GetProperty) Name() string { return "get_property" }

// Description returns a human-readable description.
func (g *GetProperty) Description() string {
	return "Read a property of a scene element"
}

// Parameters returns the declared parameter schema.
func (g *GetProperty) Parameters() []command.ParameterSpec {
	return []command.ParameterSpec{
		{Name: "id", Type: "string", Required: true, Description: "Element ID"},
		{Name: "property", Type: "string", Required: true, Description: "Property name"},
	}
}

// Validate checks the supplied parameters against the schema.
func (g *GetProperty) Validate(params map[string]value.Value) command.Result {
	return command.ValidateParams(g.Parameters(), params)
}

// Execute reads one keyed property. A missing element and a missing
// property on an existing element fail with distinct messages.
func (g *GetProperty) Execute(params map[string]value.Value, ctx *command.Context) command.Result {
	id, _ := params["id"].AsString()
	property, _ := params["property"].AsString()

	if !elementExists(ctx, id) {
		return command.Failf("no element with id %q", id)
	}

	v, ok := ctx.GetVariable(elementKey(id, property))
	if !ok {
		return command.Failf("element %q has no property %q", id, property)
	}
	return command.OkValue(property+" = "+v.String(), v)
}
