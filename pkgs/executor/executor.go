// Package executor drives the full interpretation pipeline: parse the
// input, resolve the command against a registry, validate and default
// the parameters, and run the command against the execution context.
package executor

import (
	"github.com/krayonlabs/krayon/pkgs/command"
	"github.com/krayonlabs/krayon/pkgs/parser"
)

// Executor runs mini-language input against a command registry. It holds
// no mutable state of its own; all session state lives in the Context
// passed to each call.
type Executor struct {
	registry *command.Registry
}

// New creates an executor over the given registry. The registry is
// borrowed, not copied: commands registered later are visible to
// subsequent executions.
func New(registry *command.Registry) *Executor {
	return &Executor{registry: registry}
}

// Registry returns the registry the executor resolves commands against.
func (e *Executor) Registry() *command.Registry {
	return e.registry
}

// Execute parses and runs a single command. Every failure mode comes
// back as a failed Result, never a panic: syntax errors, unknown
// commands, validation failures, and domain failures are all uniform.
func (e *Executor) Execute(input string, ctx *command.Context) command.Result {
	return e.ExecuteParsed(parser.ParseCommand(input), ctx)
}

// ExecuteParsed runs an already-parsed invocation.
func (e *Executor) ExecuteParsed(inv parser.Invocation, ctx *command.Context) command.Result {
	if !inv.Valid {
		return command.Fail("syntax error: could not parse command")
	}

	cmd, ok := e.registry.Get(inv.Command)
	if !ok {
		if hint := e.registry.Suggest(inv.Command); hint != "" {
			return command.Failf("unknown command %q (did you mean %q?)", inv.Command, hint)
		}
		return command.Failf("unknown command %q", inv.Command)
	}

	// The command's own validation verdict is returned verbatim so its
	// message reaches the caller unaltered.
	if res := cmd.Validate(inv.Params); !res.Success {
		return res
	}

	return cmd.Execute(command.ApplyDefaults(cmd.Parameters(), inv.Params), ctx)
}

// ExecuteBatch parses semicolon-separated input and runs each command in
// order against the same context. One failing command does not stop the
// batch; its Result takes its position in the returned slice and the
// remaining commands still run.
func (e *Executor) ExecuteBatch(input string, ctx *command.Context) []command.Result {
	invocations := parser.ParseCommands(input)
	results := make([]command.Result, 0, len(invocations))
	for _, inv := range invocations {
		results = append(results, e.ExecuteParsed(inv, ctx))
	}
	return results
}
