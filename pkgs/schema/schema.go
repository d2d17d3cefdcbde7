// Package schema converts command parameter schemas into JSON Schema
// documents. The documents back `krayon commands --json` and give external
// tooling a machine-readable description of every command; they can also
// be compiled for validation independent of the interpreter's own checks.
package schema

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// Document builds a JSON Schema object document for a parameter list.
// Extra properties stay allowed, matching the interpreter's permissive
// validation contract.
func Document(specs []command.ParameterSpec) map[string]interface{} {
	properties := make(map[string]interface{}, len(specs))
	var required []string

	for _, spec := range specs {
		prop := map[string]interface{}{}
		if t, ok := jsonType(spec.Type); ok {
			prop["type"] = t
		}
		if spec.Description != "" {
			prop["description"] = spec.Description
		}
		if !spec.Required && !spec.Default.IsNull() {
			prop["default"] = toInterface(spec.Default)
		}
		properties[spec.Name] = prop
		if spec.Required {
			required = append(required, spec.Name)
		}
	}

	doc := map[string]interface{}{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// ForCommand builds the JSON Schema document for one command, titled with
// the command's name and description.
func ForCommand(cmd command.Command) map[string]interface{} {
	doc := Document(cmd.Parameters())
	doc["title"] = cmd.Name()
	if desc := cmd.Description(); desc != "" {
		doc["description"] = desc
	}
	return doc
}

// Compile compiles the parameter list into a validator.
func Compile(specs []command.ParameterSpec) (*jsonschema.Schema, error) {
	doc := Document(specs)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema document")
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	const url = "schema://command.json"
	if err := compiler.AddResource(url, strings.NewReader(string(raw))); err != nil {
		return nil, errors.Wrap(err, "adding schema resource")
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, errors.Wrap(err, "compiling schema")
	}
	return compiled, nil
}

// ValidateParams validates a parameter mapping against the compiled JSON
// Schema for the given specs. This is the tooling-facing counterpart of
// command.ValidateParams.
func ValidateParams(specs []command.ParameterSpec, params map[string]value.Value) error {
	compiled, err := Compile(specs)
	if err != nil {
		return err
	}
	instance := make(map[string]interface{}, len(params))
	for name, v := range params {
		instance[name] = toInterface(v)
	}
	return compiled.Validate(instance)
}

// jsonType maps a declared parameter type to its JSON Schema type name.
// "any" has no type constraint.
func jsonType(declared string) (string, bool) {
	switch declared {
	case "number":
		return "number", true
	case "string":
		return "string", true
	case "bool":
		return "boolean", true
	default:
		return "", false
	}
}

func toInterface(v value.Value) interface{} {
	switch v.Kind {
	case value.KindNumber:
		return v.Num
	case value.KindString:
		return v.Str
	case value.KindBool:
		return v.Bool
	default:
		return nil
	}
}
