package command

import "fmt"

// Handler runs a successfully parsed command.
type Handler func(cmd ParsedCommand) error

// Spec describes a single builtin command: its name, how many
// positional parameters it takes, whether "!" is meaningful for it
// (BangUsage is shown to the user as the bang variant's description;
// empty means bang is rejected), and the handler dispatch calls on a
// successful parse.
type Spec struct {
	Name      string
	BangUsage string
	Params    []string
	Handler   Handler
}

// Registry is the builtin command table commands are looked up in by
// name during parsing.
type Registry struct {
	commands map[string]Spec
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Spec)}
}

// Register adds spec to the table. It returns an error if spec
// declares more than ParametersCapacity parameters.
func (r *Registry) Register(spec Spec) error {
	if len(spec.Params) > ParametersCapacity {
		return fmt.Errorf("command: %q declares %d parameters, exceeds capacity %d", spec.Name, len(spec.Params), ParametersCapacity)
	}
	r.commands[spec.Name] = spec
	return nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	spec, ok := r.commands[name]
	return spec, ok
}
