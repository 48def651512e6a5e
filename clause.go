package genlower

import "github.com/suspendlang/genlower/ast"

// Clause is one arm of the assembled switch: `case Index: { Statements… }`.
// The assembler appends to Statements as it replays the opcode log; once a
// later case opens, the prior Clause's Statements are never touched again.
type Clause struct {
	Index      int
	Statements []ast.Node
}

func (c *Clause) push(n ast.Node) {
	c.Statements = append(c.Statements, n)
}
