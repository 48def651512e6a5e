package ast

// ParameterFlags records modifiers on a function parameter (rest parameter,
// has-initializer, and so on). The core does not interpret these beyond
// carrying them through to the output; only the node factory and emitter
// give them meaning.
type ParameterFlags int

// Parameter is a declared function parameter, recorded by the symbol table
// in declaration order.
type Parameter struct {
	Name  string
	Flags ParameterFlags
}

func (*Parameter) nodeKind() string { return "Parameter" }
