// Package genlower implements the control-flow lowering pass that turns a
// structured function containing yield/await and try/catch/finally into a
// flat, label-addressed state machine driven by the __generator/__awaiter
// runtime ABI. See CodeGenerator for the entry point.
package genlower

import (
	"github.com/suspendlang/genlower/ast"
	"github.com/suspendlang/genlower/internal/debugcontext"
)

// CodeGenerator bundles the recorder, symbol table, label allocator, and
// block-scope stack that cooperate to lower one function. It is single-use:
// construct a fresh CodeGenerator per function being lowered.
type CodeGenerator struct {
	recorder            *recorder
	symbols             *symbolTable
	labels              *labelTable
	blocks              *blockStack
	location            *locationStack
	diagnostics         *Diagnostics
	hasProtectedRegions bool
	labelNumbers        map[Label]int
	finalized           bool
}

// NewCodeGenerator is the sole constructor. It returns a *CodeGenerator with
// all internal state initialised and ready for the caller to drive via
// Emit/EmitNode and the label/block/symbol operations.
func NewCodeGenerator() *CodeGenerator {
	loc := newLocationStack()
	return &CodeGenerator{
		recorder: newRecorder(loc),
		symbols:  newSymbolTable(),
		labels:   newLabelTable(),
		blocks:   newBlockStack(),
		location: loc,
	}
}

// WithDiagnostics attaches a diagnostics sink and returns the CodeGenerator
// for chaining. When unset, the generator operates silently.
func (g *CodeGenerator) WithDiagnostics(d *Diagnostics) *CodeGenerator {
	g.diagnostics = d
	return g
}

// Emit appends an opcode to the recorder. See recorder.emit for the sugar
// behaviors applied to string-literal arguments.
func (g *CodeGenerator) Emit(code OpCode, args ...any) {
	g.recorder.emit(code, args...)
}

// EmitNode recurses into a compound block node's statements, or issues a
// single Statement opcode for a non-compound node.
func (g *CodeGenerator) EmitNode(node ast.Node) {
	g.recorder.emitNode(node)
}

// DefineLabel allocates a fresh, unbound label.
func (g *CodeGenerator) DefineLabel() Label {
	return g.labels.define()
}

// MarkLabel binds a previously defined label to the current operation
// count.
func (g *CodeGenerator) MarkLabel(l Label) {
	g.labels.mark(l, g.recorder.len())
}

// SetLocation overwrites the current text range without affecting the push
// stack.
func (g *CodeGenerator) SetLocation(loc debugcontext.Location) {
	g.location.setLocation(loc)
}

// PushLocation saves the current text range and installs loc as current.
// Must be paired with a later PopLocation.
func (g *CodeGenerator) PushLocation(loc debugcontext.Location) {
	g.location.pushLocation(loc)
}

// PopLocation restores the text range saved by the matching PushLocation.
func (g *CodeGenerator) PopLocation() {
	g.location.popLocation()
}
