package builtins

import (
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// DeleteElement implements the delete_element command.
type DeleteElement struct{}

// Name returns the command name.
func (d *DeleteElement) Name() string { return "delete_element" }

// Description returns a human-readable description.
func (d *DeleteElement) Description() string {
	return "Delete a scene element"
}

// Parameters returns the declared parameter schema.
func (d *DeleteElement) Parameters() []command.ParameterSpec {
	return []command.ParameterSpec{
		{Name: "id", Type: "string", Required: true, Description: "Element ID"},
	}
}

// Validate checks the supplied parameters against the schema.
func (d *DeleteElement) Validate(params map[string]value.Value) command.Result {
	return command.ValidateParams(d.Parameters(), params)
}

// Execute removes every property stored under the element id. Deleting a
// nonexistent element is a domain failure, not a no-op.
func (d *DeleteElement) Execute(params map[string]value.Value, ctx *command.Context) command.Result {
	id, _ := params["id"].AsString()

	if !elementExists(ctx, id) {
		return command.Failf("no element with id %q", id)
	}

	for _, key := range ctx.VariableNamesWithPrefix(elementPrefix(id)) {
		ctx.DeleteVariable(key)
	}
	return command.Ok("deleted element '" + id + "'")
}
