package command

import (
	"sort"
	"strings"

	"github.com/krayonlabs/krayon/pkgs/scene"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// Context is the session-scoped mutable state shared across invocations:
// a variable mapping plus an optional active scene. It lives as long as
// its owner keeps it, never tied to a single invocation, and is cleared
// only on explicit request.
//
// The context carries no internal locking; callers that share one across
// goroutines synchronize externally (single-writer discipline).
type Context struct {
	variables map[string]value.Value
	sceneID   string
	hasScene  bool
	scene     *scene.Scene // optional collaborator, may be nil
}

// NewContext creates an empty execution context.
func NewContext() *Context {
	return &Context{variables: make(map[string]value.Value)}
}

// SetVariable sets a variable in the context.
func (c *Context) SetVariable(name string, v value.Value) {
	c.variables[name] = v
}

// GetVariable returns a variable and whether it exists. Absence is
// distinct from a present null value.
func (c *Context) GetVariable(name string) (value.Value, bool) {
	v, ok := c.variables[name]
	return v, ok
}

// HasVariable reports whether a variable exists.
func (c *Context) HasVariable(name string) bool {
	_, ok := c.variables[name]
	return ok
}

// DeleteVariable removes one variable.
func (c *Context) DeleteVariable(name string) {
	delete(c.variables, name)
}

// ClearVariables removes all variables.
func (c *Context) ClearVariables() {
	c.variables = make(map[string]value.Value)
}

// VariableNames returns all variable names, sorted for stable iteration.
func (c *Context) VariableNames() []string {
	names := make([]string, 0, len(c.variables))
	for name := range c.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariableNamesWithPrefix returns the sorted names sharing a prefix.
func (c *Context) VariableNamesWithPrefix(prefix string) []string {
	var names []string
	for name := range c.variables {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// SceneID returns the active scene identifier, if one is set.
func (c *Context) SceneID() (string, bool) {
	return c.sceneID, c.hasScene
}

// SetSceneID sets the active scene identifier.
func (c *Context) SetSceneID(id string) {
	c.sceneID = id
	c.hasScene = true
}

// ClearSceneID unsets the active scene identifier and detaches any scene.
func (c *Context) ClearSceneID() {
	c.sceneID = ""
	c.hasScene = false
	c.scene = nil
}

// AttachScene attaches a scene collaborator and makes it the active
// scene. Commands that transform elements also record into it.
func (c *Context) AttachScene(s *scene.Scene) {
	c.scene = s
	if s != nil {
		c.SetSceneID(s.ID())
	}
}

// Scene returns the attached scene collaborator, or nil.
func (c *Context) Scene() *scene.Scene {
	return c.scene
}
