package command

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Registry is the owning collection mapping command names to command
// implementations. Names are unique; registering under an existing name
// silently replaces the prior entry (last-write-wins).
//
// Like the execution context, the registry does no internal locking;
// concurrent use requires external synchronization by the caller.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry. Registries are constructed and
// populated by their owner and injected into the executor; there is no
// global instance.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register stores a command under its own reported name, overwriting any
// prior entry under that name.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get returns the command registered under name. The registry retains
// ownership of the returned command.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Has reports whether a command is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Names returns each registered name exactly once, in map iteration
// order. Callers needing a stable order sort the result themselves.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}

// Clear removes all entries.
func (r *Registry) Clear() {
	r.commands = make(map[string]Command)
}

// Suggest returns the registered name closest to the given one, for
// did-you-mean hints on unknown commands. Returns "" when nothing is
// close enough to be a plausible typo.
func (r *Registry) Suggest(name string) string {
	matches := fuzzy.RankFindNormalizedFold(name, r.Names())
	if len(matches) == 0 {
		return ""
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	// a distance comparable to the name's own length is noise, not a typo
	if best.Distance > len(name) {
		return ""
	}
	return best.Target
}
