package ast

// FunctionLike is a nested function declaration captured by the symbol
// table via addFunction and hoisted verbatim into the assembled output. It
// is never itself lowered — the core treats it as an opaque unit.
type FunctionLike struct {
	Kind       FunctionKind
	Name       string
	Parameters []*Parameter
	Body       *BlockStmt
}

func (*FunctionLike) nodeKind() string { return "FunctionLike" }
func (*FunctionLike) statementNode()   {}
