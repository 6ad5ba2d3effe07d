// completion/data.go
package completion

// Option is one raw (flag name, description) pair attached to a command.
type Option struct {
	Name        string
	Description string
}

// Alias maps an alternate command spelling to its target command.
type Alias struct {
	Name   string
	Target string
}

// Metadata is the read-only command registry the generators consume.
// Implementations decide which commands are in scope and in what order;
// the generators never mutate provider state.
type Metadata interface {
	// Commands returns the full sorted list of command names to generate
	// completions for, alias names included.
	Commands() []string
	// CommandOptions returns the raw options declared by a command.
	CommandOptions(command string) []Option
	// NamedArgs returns the command's positional argument types, or nil
	// when the command declares none.
	NamedArgs(command string) []NamedArg
	// ShortDescription returns the command's one-line description, or "".
	ShortDescription(command string) string
	// Aliases returns the alias table in a stable order.
	Aliases() []Alias
}

// NamedArg is either a literal completion alternative or a semantic kind
// backed by a shell-side helper function. The distinction is decided once,
// when the metadata provider builds the list.
type NamedArg struct {
	kind     SemanticKind
	literal  string
	semantic bool
}

// LiteralArg returns a NamedArg holding a concrete completion value.
func LiteralArg(value string) NamedArg {
	return NamedArg{literal: value}
}

// KindArg returns a NamedArg referring to a semantic argument kind.
func KindArg(kind SemanticKind) NamedArg {
	return NamedArg{kind: kind, semantic: true}
}

// IsKind reports whether the argument is a semantic kind rather than a
// literal alternative.
func (a NamedArg) IsKind() bool { return a.semantic }

// Kind returns the semantic kind. Only meaningful when IsKind is true.
func (a NamedArg) Kind() SemanticKind { return a.kind }

// Literal returns the literal value. Only meaningful when IsKind is false.
func (a NamedArg) Literal() string { return a.literal }

// partitionNamedArgs splits a named-argument list into semantic kinds and
// literal alternatives, preserving relative order within each partition.
func partitionNamedArgs(args []NamedArg) (kinds []SemanticKind, literals []string) {
	for _, arg := range args {
		if arg.IsKind() {
			kinds = append(kinds, arg.Kind())
		} else {
			literals = append(literals, arg.Literal())
		}
	}
	return kinds, literals
}

// CompletionPaths holds information about completion script locations
type CompletionPaths struct {
	Primary   string // Main completion path
	Fallback  string // Alternative path if primary isn't available
	Extension string // File extension for completion script (if any)
	Comment   string // Documentation about the path choice
}

// CompletionFileInfo holds shell-specific naming conventions
type CompletionFileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}
