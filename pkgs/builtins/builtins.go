// Package builtins provides the standard scene commands: element
// creation and deletion, property access, and geometric transforms.
//
// Elements live inside the execution context's variable mapping under a
// namespaced key convention: element.<id>.<property>. The presence of
// the element.<id>.type key marks the element as existing; deleting an
// element removes every key under its prefix. This convention is held
// invariant across all built-ins and pinned by the package tests.
package builtins

import (
	"github.com/krayonlabs/krayon/pkgs/command"
)

const elementNamespace = "element."

// elementKey returns the context variable key for one element property.
func elementKey(id, property string) string {
	return elementNamespace + id + "." + property
}

// elementPrefix returns the key prefix covering all of an element's
// properties.
func elementPrefix(id string) string {
	return elementNamespace + id + "."
}

// elementExists reports whether an element id is present in the context.
func elementExists(ctx *command.Context, id string) bool {
	return ctx.HasVariable(elementKey(id, "type"))
}

// Register installs all built-in commands into a registry.
func Register(reg *command.Registry) {
	reg.Register(&CreateElement{})
	reg.Register(&DeleteElement{})
	reg.Register(&SetProperty{})
	reg.Register(&GetProperty{})
	reg.Register(&Transform{})
}

// NewRegistry returns a registry pre-populated with the built-ins.
func NewRegistry() *command.Registry {
	reg := command.NewRegistry()
	Register(reg)
	return reg
}
