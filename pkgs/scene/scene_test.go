package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krayonlabs/krayon/pkgs/geom"
)

func TestNewScene(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 0, s.CommandCount())
	assert.True(t, s.TransformationMatrix().ApproxEqual(geom.Identity()))
}

func TestSceneIdentifiersAreUnique(t *testing.T) {
	assert.NotEqual(t, New().ID(), New().ID())
}

func TestPlotRecordsCommands(t *testing.T) {
	s := New()
	s.Plot(1, 2, 0)
	s.Plot(3, 4, 5)

	require.Equal(t, 2, s.CommandCount())
	first, ok := s.Commands()[0].(PlotCommand)
	require.True(t, ok)
	assert.Equal(t, PlotCommand{X: 1, Y: 2, Z: 0}, first)
}

func TestRotateAccumulatesMatrix(t *testing.T) {
	s := New()
	s.RotateZ(math.Pi / 2)
	s.RotateZ(math.Pi / 2)

	assert.Equal(t, 2, s.CommandCount())

	// two quarter turns make a half turn
	got := s.TransformationMatrix().MulVec(geom.Point(1, 0, 0))
	assert.True(t, got.ApproxEqual(geom.Point(-1, 0, 0)), "got %+v", got)
}

func TestRotateNormalizesAxis(t *testing.T) {
	s := New()
	s.Rotate(1, geom.V4(0, 0, 10, 0))
	cmd := s.Commands()[0].(RotateCommand)
	assert.InDelta(t, 1.0, cmd.Axis.Length(), 1e-9)
}

func TestExecuteCommand(t *testing.T) {
	s := New()
	s.ExecuteCommand(PlotCommand{X: 1})
	s.ExecuteCommand(RotateCommand{AngleRadians: math.Pi, Axis: geom.V4(0, 0, 1, 0)})

	assert.Equal(t, 2, s.CommandCount())
	got := s.TransformationMatrix().MulVec(geom.Point(1, 0, 0))
	assert.True(t, got.ApproxEqual(geom.Point(-1, 0, 0)), "got %+v", got)
}

func TestClearCommandsKeepsMatrix(t *testing.T) {
	s := New()
	s.Plot(1, 1, 1)
	s.RotateZ(math.Pi)
	s.ClearCommands()

	assert.Equal(t, 0, s.CommandCount())
	assert.False(t, s.TransformationMatrix().ApproxEqual(geom.Identity()),
		"clearing the log must not reset the transformation")
}

func TestResetTransformation(t *testing.T) {
	s := New()
	s.RotateZ(1.5)
	s.ResetTransformation()
	assert.True(t, s.TransformationMatrix().ApproxEqual(geom.Identity()))
	// history survives a matrix reset
	assert.Equal(t, 1, s.CommandCount())
}
