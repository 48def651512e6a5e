package genlower

import (
	"strconv"

	"github.com/suspendlang/genlower/ast"
)

// symbolTable holds the three ordered sequences the output builder emits at
// the top of the assembled body (parameters, anonymous locals, named
// locals) plus nested function declarations hoisted verbatim.
type symbolTable struct {
	parameters   []*ast.Parameter
	locals       []*ast.Identifier // auto-named __l0, __l1, ...
	namedLocals  []*ast.Identifier
	functions    []*ast.FunctionLike
	localCounter int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{}
}

// addParameter appends a parameter declaration in declaration order.
func (s *symbolTable) addParameter(name string, flags ast.ParameterFlags) {
	s.parameters = append(s.parameters, &ast.Parameter{Name: name, Flags: flags})
}

// addFunction appends a nested function declaration to be hoisted verbatim
// into the output, ahead of the switch body.
func (s *symbolTable) addFunction(decl *ast.FunctionLike) {
	s.functions = append(s.functions, decl)
}

// declareLocal returns a reference node for a reusable local slot. With an
// empty name it allocates a fresh anonymous slot __l{n}; the __l{n} scheme
// must never collide with a caller-supplied name, so named locals are kept
// in a separate list rather than sharing the counter.
func (s *symbolTable) declareLocal(name string) *ast.Identifier {
	if name == "" {
		id := &ast.Identifier{Name: anonymousLocalName(s.localCounter)}
		s.localCounter++
		s.locals = append(s.locals, id)
		return id
	}
	id := &ast.Identifier{Name: name}
	s.namedLocals = append(s.namedLocals, id)
	return id
}

func anonymousLocalName(n int) string {
	return "__l" + strconv.Itoa(n)
}

// --- CodeGenerator-level symbol table operations ---

// AddParameter appends a parameter declaration in declaration order. The
// recorded parameter carries only its name and flags; it is not stamped with
// the current location.
func (g *CodeGenerator) AddParameter(name string, flags ast.ParameterFlags) {
	g.symbols.addParameter(name, flags)
}

// AddFunction hoists a nested function declaration verbatim into the output.
func (g *CodeGenerator) AddFunction(decl *ast.FunctionLike) {
	g.symbols.addFunction(decl)
}

// DeclareLocal returns a reusable reference node for a local slot: a fresh
// anonymous __l{n} when name is empty, or the caller-supplied name.
func (g *CodeGenerator) DeclareLocal(name string) *ast.Identifier {
	return g.symbols.declareLocal(name)
}

// CacheExpression allocates an anonymous local, records a Statement opcode
// that assigns expr to it, and returns the local's reference node. The
// visitor uses this to avoid duplicate evaluation when an expression feeds
// multiple control-flow arms.
func (g *CodeGenerator) CacheExpression(expr ast.Expression) *ast.Identifier {
	local := g.symbols.declareLocal("")
	g.recorder.emit(OpStatement, &ast.Generated{
		Template:      "%target% = %value%;",
		Substitutions: map[string]ast.Node{"target": local, "value": expr},
	})
	return local
}
