// Package ast defines the minimal node surface the lowering core consumes.
// The core itself constructs only Generated and LabelRef nodes plus the
// Identifier and Parameter nodes its symbol table hands out; other concrete
// statement, expression, and declaration nodes are produced upstream by the
// parser/visitor and handed to the recorder as opaque values.
package ast

// Node is satisfied by every value the recorder and assembler accept as
// payload. The marker method nodeKind() prevents unrelated types from
// satisfying the interface by accident.
type Node interface {
	nodeKind() string
}

// Statement marks a Node that may occupy a statement position inside an
// assembled case clause.
type Statement interface {
	Node
	statementNode()
}

// Expression marks a Node usable as a value-producing operand — the right
// hand side of an Assign opcode, the condition of a BrTrue/BrFalse, the
// payload of a Yield/Return/Throw.
type Expression interface {
	Node
	expressionNode()
}

// Block is a compound Statement whose Body is walked by emitNode instead of
// being pushed as a single opaque Statement opcode. Plain blocks, function
// bodies, and try/catch/finally blocks all satisfy Block.
type Block interface {
	Statement
	Body() []Statement
}

// FunctionKind selects the outer node shape produced by buildGeneratorFunction
// and buildAsyncFunction.
type FunctionKind int

const (
	FunctionDeclaration FunctionKind = iota
	Method
	Getter
	FunctionExpression
	ArrowFunction
)

func (k FunctionKind) String() string {
	switch k {
	case FunctionDeclaration:
		return "function"
	case Method:
		return "method"
	case Getter:
		return "getter"
	case FunctionExpression:
		return "function-expression"
	case ArrowFunction:
		return "arrow"
	default:
		return "unknown"
	}
}
