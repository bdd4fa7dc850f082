package types

// Request carries everything a single operation invocation needs. The
// CLI fills it in at the process boundary; operations never reach into
// ambient process state themselves.
type Request struct {
	// Input is the text read from stdin for pipe filters.
	Input string

	// Args holds the positional arguments (cutset, delimiter, strings,
	// template text, variable names) exactly as given.
	Args []string

	// Unique and Reverse apply to the sort operation only.
	Unique  bool
	Reverse bool

	// Vars is the explicit name→value environment for template
	// operations, populated from the process environment by the caller.
	Vars map[string]string

	// Left and Right are the placeholder delimiters for template
	// operations.
	Left  string
	Right string
}

// Filter executes one text operation. Filters are stateless; every
// invocation is independent.
type Filter func(req Request) (string, error)

// Operation describes a named text operation exposed by the CLI.
type Operation struct {
	// Name is the operation name as used on the command line.
	Name string

	// Group classifies the operation for listings (case, trim, lines,
	// list, affix, template).
	Group string

	// Summary is a one-line description shown by the ops command.
	Summary string

	// Filter runs the operation.
	Filter Filter
}
