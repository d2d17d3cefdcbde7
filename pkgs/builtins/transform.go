package builtins

import (
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/geom"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// Transform implements the transform command. It applies a geometric
// operation to an element's stored position and, when a scene is
// attached to the context, records the operation into its command log.
type Transform struct{}

// Name returns the command name.
func (t *Transform) Name() string { return "transform" }

// Description returns a human-readable description.
func (t *Transform) Description() string {
	return "Apply a geometric transform to a scene element"
}

// Parameters returns the declared parameter schema.
func (t *Transform) Parameters() []command.ParameterSpec {
	return []command.ParameterSpec{
		{Name: "id", Type: "string", Required: true, Description: "Element ID"},
		{Name: "operation", Type: "string", Required: true, Description: "One of: move, rotate, scale"},
		{Name: "x", Type: "number", Required: false, Default: value.Number(0), Description: "X component"},
		{Name: "y", Type: "number", Required: false, Default: value.Number(0), Description: "Y component"},
		{Name: "z", Type: "number", Required: false, Default: value.Number(0), Description: "Z component"},
	}
}

// Validate checks the supplied parameters against the schema.
func (t *Transform) Validate(params map[string]value.Value) command.Result {
	return command.ValidateParams(t.Parameters(), params)
}

// Execute applies the requested operation to the element's position.
// Rotation angles are radians. An unknown operation name fails without
// touching the element.
func (t *Transform) Execute(params map[string]value.Value, ctx *command.Context) command.Result {
	id, _ := params["id"].AsString()
	op, _ := params["operation"].AsString()

	if !elementExists(ctx, id) {
		return command.Failf("no element with id %q", id)
	}

	x, _ := params["x"].AsNumber()
	y, _ := params["y"].AsNumber()
	z, _ := params["z"].AsNumber()

	var m geom.Mat4
	switch op {
	case "move":
		m = geom.Translation(x, y, z)
	case "rotate":
		m = geom.RotationZ(z).Mul(geom.RotationY(y)).Mul(geom.RotationX(x))
	case "scale":
		m = geom.Scaling(x, y, z)
	default:
		return command.Failf("unknown transform operation %q", op)
	}

	pos := t.elementPosition(ctx, id)
	moved := m.MulVec(pos)

	ctx.SetVariable(elementKey(id, "x"), value.Number(moved.X))
	ctx.SetVariable(elementKey(id, "y"), value.Number(moved.Y))
	ctx.SetVariable(elementKey(id, "z"), value.Number(moved.Z))

	if s := ctx.Scene(); s != nil {
		switch op {
		case "move":
			s.Plot(moved.X, moved.Y, moved.Z)
		case "rotate":
			if x != 0 {
				s.Rotate(x, geom.V4(1, 0, 0, 0))
			}
			if y != 0 {
				s.Rotate(y, geom.V4(0, 1, 0, 0))
			}
			if z != 0 {
				s.Rotate(z, geom.V4(0, 0, 1, 0))
			}
		}
	}

	return command.OkValue(op+" applied to element '"+id+"'", value.String(id))
}

// elementPosition reads the element's stored position as a point.
// Missing coordinates read as 0; z in particular is absent until the
// first transform writes it.
func (t *Transform) elementPosition(ctx *command.Context, id string) geom.Vec4 {
	coord := func(axis string) float64 {
		v, ok := ctx.GetVariable(elementKey(id, axis))
		if !ok {
			return 0
		}
		n, _ := v.AsNumber()
		return n
	}
	return geom.Point(coord("x"), coord("y"), coord("z"))
}
