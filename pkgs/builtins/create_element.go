package builtins

import (
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// CreateElement implements the create_element command.
type CreateElement struct{}

// Name returns the command name.
func (c *CreateElement) Name() string { return "create_element" }

// Description returns a human-readable description.
func (c *CreateElement) Description() string {
	return "Create a new scene element"
}

// Parameters returns the declared parameter schema.
func (c *CreateElement) Parameters() []command.ParameterSpec {
	return []command.ParameterSpec{
		{Name: "type", Type: "string", Required: true, Description: "Element type"},
		{Name: "name", Type: "string", Required: true, Description: "Element name"},
		{Name: "x", Type: "number", Required: false, Default: value.Number(0), Description: "X coordinate"},
		{Name: "y", Type: "number", Required: false, Default: value.Number(0), Description: "Y coordinate"},
	}
}

// Validate checks the supplied parameters against the schema.
func (c *CreateElement) Validate(params map[string]value.Value) command.Result {
	return command.ValidateParams(c.Parameters(), params)
}

// Execute installs the element's initial properties. Creating an element
// under an existing id replaces it wholesale: stale properties from the
// prior element do not leak into the new one.
func (c *CreateElement) Execute(params map[string]value.Value, ctx *command.Context) command.Result {
	name, _ := params["name"].AsString()
	elemType, _ := params["type"].AsString()

	if elementExists(ctx, name) {
		for _, key := range ctx.VariableNamesWithPrefix(elementPrefix(name)) {
			ctx.DeleteVariable(key)
		}
	}

	ctx.SetVariable(elementKey(name, "type"), value.String(elemType))
	ctx.SetVariable(elementKey(name, "x"), params["x"])
	ctx.SetVariable(elementKey(name, "y"), params["y"])

	return command.OkValue("created element '"+name+"'", value.String(name))
}
