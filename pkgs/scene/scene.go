// Package scene records plot and rotate operations against a scene and
// accumulates the resulting transformation matrix. It is a plain data
// container: the interpreter's built-in commands call into it, but no
// interpreter logic lives here.
package scene

import (
	"github.com/google/uuid"

	"github.com/krayonlabs/krayon/pkgs/geom"
)

// Command is one recorded scene operation. The set is closed: plots and
// rotations only.
type Command interface {
	isCommand()
}

// PlotCommand records a point plotted at the given coordinates.
type PlotCommand struct {
	X, Y, Z float64
}

// RotateCommand records a rotation around an axis.
type RotateCommand struct {
	AngleRadians float64
	Axis         geom.Vec4
}

func (PlotCommand) isCommand()   {}
func (RotateCommand) isCommand() {}

// Scene holds a command history and the cumulative transformation matrix.
type Scene struct {
	id       string
	commands []Command
	matrix   geom.Mat4
}

// New creates an empty scene with a fresh identifier and an identity
// transformation.
func New() *Scene {
	return &Scene{
		id:     uuid.NewString(),
		matrix: geom.Identity(),
	}
}

// Restore rebuilds a scene from previously captured state, keeping the
// original identifier. Used when loading a persisted session.
func Restore(id string, commands []Command, matrix geom.Mat4) *Scene {
	return &Scene{id: id, commands: commands, matrix: matrix}
}

// ID returns the scene's stable identifier.
func (s *Scene) ID() string { return s.id }

// Plot records a point at (x, y, z).
func (s *Scene) Plot(x, y, z float64) {
	s.commands = append(s.commands, PlotCommand{X: x, Y: y, Z: z})
}

// Rotate records a rotation and folds it into the transformation matrix.
// The axis is normalized; the default axis is Z.
func (s *Scene) Rotate(angleRadians float64, axis geom.Vec4) {
	n := axis.Normalized()
	s.commands = append(s.commands, RotateCommand{AngleRadians: angleRadians, Axis: n})
	s.matrix = geom.RotationAxis(angleRadians, n).Mul(s.matrix)
}

// RotateZ records a rotation about the Z axis.
func (s *Scene) RotateZ(angleRadians float64) {
	s.Rotate(angleRadians, geom.V4(0, 0, 1, 0))
}

// ExecuteCommand applies a command to the scene.
func (s *Scene) ExecuteCommand(cmd Command) {
	switch c := cmd.(type) {
	case PlotCommand:
		s.Plot(c.X, c.Y, c.Z)
	case RotateCommand:
		s.Rotate(c.AngleRadians, c.Axis)
	}
}

// Commands returns the recorded command history in execution order.
func (s *Scene) Commands() []Command { return s.commands }

// CommandCount returns the number of recorded commands.
func (s *Scene) CommandCount() int { return len(s.commands) }

// ClearCommands removes the command history. The transformation matrix is
// untouched; use ResetTransformation for that.
func (s *Scene) ClearCommands() { s.commands = nil }

// TransformationMatrix returns the cumulative transformation.
func (s *Scene) TransformationMatrix() geom.Mat4 { return s.matrix }

// ResetTransformation resets the matrix to identity.
func (s *Scene) ResetTransformation() { s.matrix = geom.Identity() }
