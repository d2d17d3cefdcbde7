package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

var specs = []command.ParameterSpec{
	{Name: "type", Type: "string", Required: true, Description: "Element type"},
	{Name: "x", Type: "number", Required: false, Default: value.Number(0), Description: "X coordinate"},
	{Name: "visible", Type: "bool", Required: false, Default: value.Bool(true)},
	{Name: "payload", Type: "any", Required: false, Default: value.Null()},
}

func TestDocumentShape(t *testing.T) {
	doc := Document(specs)

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, true, doc["additionalProperties"])
	assert.Equal(t, []string{"type"}, doc["required"])

	properties := doc["properties"].(map[string]interface{})
	require.Len(t, properties, 4)

	typeProp := properties["type"].(map[string]interface{})
	assert.Equal(t, "string", typeProp["type"])
	assert.Equal(t, "Element type", typeProp["description"])

	xProp := properties["x"].(map[string]interface{})
	assert.Equal(t, "number", xProp["type"])
	assert.Equal(t, float64(0), xProp["default"])

	visibleProp := properties["visible"].(map[string]interface{})
	assert.Equal(t, "boolean", visibleProp["type"])

	// "any" carries no type constraint
	payloadProp := properties["payload"].(map[string]interface{})
	_, hasType := payloadProp["type"]
	assert.False(t, hasType)
}

func TestCompileAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]value.Value
		ok     bool
	}{
		{
			name:   "valid full set",
			params: map[string]value.Value{"type": value.String("circle"), "x": value.Number(1), "visible": value.Bool(false)},
			ok:     true,
		},
		{
			name:   "required only",
			params: map[string]value.Value{"type": value.String("circle")},
			ok:     true,
		},
		{
			name:   "missing required",
			params: map[string]value.Value{"x": value.Number(1)},
			ok:     false,
		},
		{
			name:   "wrong type",
			params: map[string]value.Value{"type": value.String("circle"), "x": value.String("ten")},
			ok:     false,
		},
		{
			name:   "extra properties allowed",
			params: map[string]value.Value{"type": value.String("circle"), "unknown": value.Number(9)},
			ok:     true,
		},
		{
			name:   "any accepts null",
			params: map[string]value.Value{"type": value.String("circle"), "payload": value.Null()},
			ok:     true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateParams(specs, test.params)
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestForCommand(t *testing.T) {
	cmd := &titledCommand{}
	doc := ForCommand(cmd)
	assert.Equal(t, "demo", doc["title"])
	assert.Equal(t, "a demo command", doc["description"])
}

type titledCommand struct{}

func (t *titledCommand) Name() string                          { return "demo" }
func (t *titledCommand) Description() string                   { return "a demo command" }
func (t *titledCommand) Parameters() []command.ParameterSpec   { return specs }
func (t *titledCommand) Validate(p map[string]value.Value) command.Result {
	return command.ValidateParams(specs, p)
}
func (t *titledCommand) Execute(p map[string]value.Value, ctx *command.Context) command.Result {
	return command.Ok("")
}
