package session

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/geom"
	"github.com/krayonlabs/krayon/pkgs/scene"
	"github.com/krayonlabs/krayon/pkgs/value"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	ctx := command.NewContext()
	ctx.SetVariable("element.c1.type", value.String("circle"))
	ctx.SetVariable("element.c1.x", value.Number(3.5))
	ctx.SetVariable("element.c1.visible", value.Bool(true))
	ctx.SetVariable("element.c1.payload", value.Null())

	require.NoError(t, Save(path, ctx))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ctx.VariableNames(), loaded.VariableNames())
	for _, name := range ctx.VariableNames() {
		want, _ := ctx.GetVariable(name)
		got, ok := loaded.GetVariable(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	assert.Nil(t, loaded.Scene())
}

func TestSaveLoadWithScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cbor")

	ctx := command.NewContext()
	s := scene.New()
	s.Plot(1, 2, 3)
	s.Rotate(math.Pi/2, geom.V4(0, 0, 1, 0))
	ctx.AttachScene(s)

	require.NoError(t, Save(path, ctx))

	loaded, err := Load(path)
	require.NoError(t, err)

	restored := loaded.Scene()
	require.NotNil(t, restored)
	assert.Equal(t, s.ID(), restored.ID())

	id, ok := loaded.SceneID()
	require.True(t, ok)
	assert.Equal(t, s.ID(), id)

	require.Equal(t, 2, restored.CommandCount())
	assert.Equal(t, scene.PlotCommand{X: 1, Y: 2, Z: 3}, restored.Commands()[0])
	rot, ok := restored.Commands()[1].(scene.RotateCommand)
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, rot.AngleRadians, 1e-12)

	assert.True(t, s.TransformationMatrix().ApproxEqual(restored.TransformationMatrix()))
}

func TestMarshalDeterministic(t *testing.T) {
	ctx := command.NewContext()
	ctx.SetVariable("b", value.Number(2))
	ctx.SetVariable("a", value.Number(1))

	first, err := Marshal(ctx)
	require.NoError(t, err)
	second, err := Marshal(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.cbor"))
	assert.Error(t, err)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("not cbor at all"))
	assert.Error(t, err)
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	data, err := encMode.Marshal(snapshot{Version: 99})
	require.NoError(t, err)

	_, err = Unmarshal(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}
