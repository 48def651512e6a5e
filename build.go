package genlower

import (
	"github.com/suspendlang/genlower/ast"
	"github.com/suspendlang/genlower/internal/debugcontext"
)

// Function is the resulting function node returned by BuildGeneratorFunction
// and BuildAsyncFunction: the locals declaration, any hoisted nested
// function declarations, and the assembled switch body, stamped with the
// location supplied by the caller. It is consumed by the render package (or
// any downstream emitter) rather than by the core itself.
type Function struct {
	Kind     ast.FunctionKind
	Name     string
	Location debugcontext.Location
	Async    bool

	// PromiseCtor is set only when Async is true: the constructor node the
	// assembled body is wrapped in (`new {PromiseCtor}(...)`).
	PromiseCtor ast.Node

	Parameters []*ast.Parameter
	Locals     []*ast.Identifier
	Functions  []*ast.FunctionLike
	Clauses    []*Clause
}

// BuildGeneratorFunction finalizes the recording and wraps the assembled
// body in:
//
//	{locals-decl}?
//	{hoisted-functions}
//	return __generator(function (__state) {
//	    switch (__state.label) {
//	        {clauses}
//	    }
//	});
//
// Finalization is invoked exactly once per CodeGenerator; calling this (or
// BuildAsyncFunction) a second time is a caller bug.
func (g *CodeGenerator) BuildGeneratorFunction(kind ast.FunctionKind, name string, location debugcontext.Location) *Function {
	asm := g.finalize()
	return &Function{
		Kind:       kind,
		Name:       name,
		Location:   location,
		Parameters: g.symbols.parameters,
		Locals:     allLocals(g.symbols),
		Functions:  g.symbols.functions,
		Clauses:    asm.clauses,
	}
}

// BuildAsyncFunction finalizes the recording and wraps the assembled body
// instead in:
//
//	{locals-decl}?
//	{hoisted-functions}
//	return new {promiseCtor}(function (__resolve) {
//	    __resolve(__awaiter(__generator(function (__state) {
//	        switch (__state.label) {
//	            {clauses}
//	        }
//	    })));
//	});
func (g *CodeGenerator) BuildAsyncFunction(kind ast.FunctionKind, name string, promiseCtor ast.Node, location debugcontext.Location) *Function {
	asm := g.finalize()
	return &Function{
		Kind:        kind,
		Name:        name,
		Location:    location,
		Async:       true,
		PromiseCtor: promiseCtor,
		Parameters:  g.symbols.parameters,
		Locals:      allLocals(g.symbols),
		Functions:   g.symbols.functions,
		Clauses:     asm.clauses,
	}
}

// allLocals concatenates anonymous and named locals in the order the output
// builder declares them: anonymous __l{n} slots first, then caller-named
// locals.
func allLocals(s *symbolTable) []*ast.Identifier {
	out := make([]*ast.Identifier, 0, len(s.locals)+len(s.namedLocals))
	out = append(out, s.locals...)
	out = append(out, s.namedLocals...)
	return out
}
