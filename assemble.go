package genlower

import (
	"fmt"

	"github.com/suspendlang/genlower/ast"
)

// assembly is the finalization pass's output: an ordered sequence of case
// clauses ready for the output builder to wrap in a switch.
type assembly struct {
	clauses             []*Clause
	hasProtectedRegions bool
}

// finalize replays the opcode log and the block-event log in lockstep,
// producing the switch-cased function body. It is the densest part of the
// core: a stateful lock-step over two timelines, a fall-through policy, and
// a protected-region stack replay. It must run exactly once per
// CodeGenerator.
func (g *CodeGenerator) finalize() *assembly {
	if g.finalized {
		invariant("finalize", "a CodeGenerator may only be finalized once")
	}
	if !g.blocks.isEmpty() {
		invariant("finalize", "the live block stack is not empty")
	}
	g.finalized = true
	g.labelNumbers = make(map[Label]int)

	a := &assembler{
		gen:    g,
		labels: g.labelNumbers,
	}

	operationCount := len(g.recorder.operations)
	for i := 0; i < operationCount; i++ {
		a.labelSync(i)
		a.blockSync(i)
		a.ensureCase()
		if a.abrupt || a.completion {
			continue // dead code: suppressed until the next label mark
		}
		a.dispatch(g.recorder.operations[i])
	}

	// Trailing label sync: binds any label marked exactly at the end of the
	// operation stream (e.g. an exception block's endLabel).
	a.labelSync(operationCount)
	a.blockSync(operationCount)

	if !a.completion {
		if len(a.clauses) == 0 || a.abrupt {
			a.openCase()
		}
		a.current.push(g.CreateInlineReturn(nil))
	}

	for _, l := range g.labels.unmarked() {
		g.diagnostics.trace(g.location.current, fmt.Sprintf("label %d was defined but never marked before finalization", l))
	}

	return &assembly{clauses: a.clauses, hasProtectedRegions: g.hasProtectedRegions}
}

// assembler carries the mutable state threaded through finalize's main
// pass: the accumulated clauses, the current clause's statement buffer, the
// cursor over the block-event log, and the abrupt/completion flags that
// gate dead-code suppression.
type assembler struct {
	gen        *CodeGenerator
	labels     map[Label]int
	clauses    []*Clause
	current    *Clause
	blockIndex int
	abrupt     bool
	completion bool
}

// openCase closes out the current clause (emitting a fall-through fix-up if
// it ended neither abruptly nor in completion) and opens a fresh one. The
// very first clause additionally gets the protected-region stack
// initializer when the function contains any try blocks.
func (a *assembler) openCase() {
	if len(a.clauses) > 0 && !a.abrupt && !a.completion {
		a.current.push(fallthroughFixup(len(a.clauses)))
	}
	a.current = &Clause{Index: len(a.clauses)}
	a.clauses = append(a.clauses, a.current)
	a.abrupt = false
	a.completion = false
	if len(a.clauses) == 1 && a.gen.hasProtectedRegions {
		a.current.push(trysInitStatement())
	}
}

// ensureCase lazily opens case 0 the first time a clause is needed but no
// label has yet triggered one (the common case: the function's first
// operation has no label bound at index 0).
func (a *assembler) ensureCase() {
	if a.current == nil {
		a.openCase()
	}
}

// labelSync binds every label whose mark equals i to the clause that is
// about to hold the operations starting at i, opening a new clause if any
// label is bound here.
func (a *assembler) labelSync(i int) {
	var bound []Label
	for id := 1; id <= len(a.gen.labels.bindings); id++ {
		if a.gen.labels.bindings[id-1] == i {
			bound = append(bound, Label(id))
		}
	}
	if len(bound) == 0 {
		return
	}
	a.openCase()
	for _, l := range bound {
		a.labels[l] = a.current.Index
	}
}

// blockSync emits the protected-region registration for every Exception
// block opened at or before i that has not yet been processed. Close
// events, and Open events of non-Exception blocks, exist only to have
// supported in-recording queries and need no emission here.
func (a *assembler) blockSync(i int) {
	events := a.gen.blocks.events
	for a.blockIndex < len(events) && events[a.blockIndex].operationOffset <= i {
		ev := events[a.blockIndex]
		a.blockIndex++
		if ev.action != eventOpen || ev.block.kind != blockException {
			continue
		}
		a.current.push(a.trysPush(ev.block))
	}
}

// trysPush builds the __state.trys.push([...]) statement for an Exception
// block, with absent catch/finally slots serialized as null and every
// label slot resolved through a forward-reference-safe LabelRef.
func (a *assembler) trysPush(blk *block) ast.Node {
	var catch, finally ast.Node = nullLiteral(), nullLiteral()
	if blk.catchLabel > 0 {
		catch = a.gen.labelRef(blk.catchLabel)
	}
	if blk.finallyLabel > 0 {
		finally = a.gen.labelRef(blk.finallyLabel)
	}
	return &ast.Generated{
		Template: "__state.trys.push([%start%, %catch%, %finally%, %end%]);",
		Substitutions: map[string]ast.Node{
			"start":   a.gen.labelRef(blk.startLabel),
			"catch":   catch,
			"finally": finally,
			"end":     a.gen.labelRef(blk.endLabel),
		},
	}
}

// dispatch pushes the statement(s) corresponding to a single Operation into
// the current clause and updates the abrupt/completion flags.
func (a *assembler) dispatch(op Operation) {
	switch op.Code {
	case OpStatement:
		a.current.push(op.Args[0].(ast.Node))

	case OpAssign:
		a.current.push(createInlineAssign(op.Args[0].(ast.Node), op.Args[1].(ast.Node)))

	case OpBreak:
		l := op.Args[0].(Label)
		a.current.push(a.gen.CreateInlineBreak(l))
		a.abrupt = true

	case OpBrTrue:
		l := op.Args[0].(Label)
		cond := op.Args[1].(ast.Expression)
		a.current.push(createConditionalBreak(false, cond, a.gen.labelRef(l)))

	case OpBrFalse:
		l := op.Args[0].(Label)
		cond := op.Args[1].(ast.Expression)
		a.current.push(createConditionalBreak(true, cond, a.gen.labelRef(l)))

	case OpYield:
		var expr ast.Expression
		if len(op.Args) > 0 && op.Args[0] != nil {
			expr = op.Args[0].(ast.Expression)
		}
		a.current.push(createInlineYield(expr))
		a.abrupt = true

	case OpReturn:
		var expr ast.Expression
		if len(op.Args) > 0 && op.Args[0] != nil {
			expr = op.Args[0].(ast.Expression)
		}
		a.current.push(a.gen.CreateInlineReturn(expr))
		a.completion = true

	case OpThrow:
		a.current.push(createInlineThrow(op.Args[0].(ast.Expression)))
		a.completion = true

	case OpEndfinally:
		a.current.push(createInlineEndfinally())
		a.abrupt = true

	default:
		invariant("finalize", "unknown opcode %v", op.Code)
	}
}
