// Package session persists an execution context between runs. Snapshots
// are encoded as canonical CBOR: compact, deterministic, and stable
// across versions of this package as long as the snapshot schema keeps
// its field keys.
package session

import (
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/geom"
	"github.com/krayonlabs/krayon/pkgs/scene"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// snapshotVersion guards against loading snapshots written by an
// incompatible schema.
const snapshotVersion = 1

type snapshot struct {
	Version   int                    `cbor:"version"`
	Variables map[string]value.Value `cbor:"variables"`
	Scene     *sceneSnapshot         `cbor:"scene,omitempty"`
}

type sceneSnapshot struct {
	ID       string         `cbor:"id"`
	Commands []sceneCommand `cbor:"commands"`
	Matrix   geom.Mat4      `cbor:"matrix"`
}

// sceneCommand flattens the scene's closed command variants into one
// tagged record for encoding.
type sceneCommand struct {
	Kind         string    `cbor:"kind"` // "plot" or "rotate"
	X            float64   `cbor:"x,omitempty"`
	Y            float64   `cbor:"y,omitempty"`
	Z            float64   `cbor:"z,omitempty"`
	AngleRadians float64   `cbor:"angle,omitempty"`
	Axis         geom.Vec4 `cbor:"axis,omitempty"`
}

var encMode cbor.EncMode

func init() {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = mode
}

// Save writes a snapshot of the context to path.
func Save(path string, ctx *command.Context) error {
	data, err := Marshal(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing session file %s", path)
	}
	return nil
}

// Load reads a snapshot from path and rebuilds the context it captured.
func Load(path string) (*command.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading session file %s", path)
	}
	return Unmarshal(data)
}

// Marshal encodes the context as canonical CBOR.
func Marshal(ctx *command.Context) ([]byte, error) {
	snap := snapshot{
		Version:   snapshotVersion,
		Variables: make(map[string]value.Value, len(ctx.VariableNames())),
	}
	for _, name := range ctx.VariableNames() {
		v, _ := ctx.GetVariable(name)
		snap.Variables[name] = v
	}

	if s := ctx.Scene(); s != nil {
		ss := &sceneSnapshot{
			ID:     s.ID(),
			Matrix: s.TransformationMatrix(),
		}
		for _, cmd := range s.Commands() {
			switch c := cmd.(type) {
			case scene.PlotCommand:
				ss.Commands = append(ss.Commands, sceneCommand{Kind: "plot", X: c.X, Y: c.Y, Z: c.Z})
			case scene.RotateCommand:
				ss.Commands = append(ss.Commands, sceneCommand{Kind: "rotate", AngleRadians: c.AngleRadians, Axis: c.Axis})
			}
		}
		snap.Scene = ss
	}

	data, err := encMode.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "encoding session snapshot")
	}
	return data, nil
}

// Unmarshal decodes a snapshot and rebuilds the captured context.
func Unmarshal(data []byte) (*command.Context, error) {
	var snap snapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "decoding session snapshot")
	}
	if snap.Version != snapshotVersion {
		return nil, errors.Errorf("unsupported session snapshot version %d", snap.Version)
	}

	ctx := command.NewContext()
	for name, v := range snap.Variables {
		ctx.SetVariable(name, v)
	}

	if snap.Scene != nil {
		commands := make([]scene.Command, 0, len(snap.Scene.Commands))
		for _, c := range snap.Scene.Commands {
			switch c.Kind {
			case "plot":
				commands = append(commands, scene.PlotCommand{X: c.X, Y: c.Y, Z: c.Z})
			case "rotate":
				commands = append(commands, scene.RotateCommand{AngleRadians: c.AngleRadians, Axis: c.Axis})
			default:
				return nil, errors.Errorf("unknown scene command kind %q", c.Kind)
			}
		}
		ctx.AttachScene(scene.Restore(snap.Scene.ID, commands, snap.Scene.Matrix))
	}

	return ctx, nil
}
