package genlower

import "github.com/suspendlang/genlower/ast"

// exceptionState is the monotonic state of an Exception block: states only
// ever advance, never regress, through Try -> Catch -> Finally -> Done.
type exceptionState int

const (
	stateTry exceptionState = iota
	stateCatch
	stateFinally
	stateDone
)

// blockKind distinguishes the five tagged variants a block scope can be.
type blockKind int

const (
	blockException blockKind = iota
	blockBreak
	blockContinue
	blockScriptBreak
	blockScriptContinue
)

func (k blockKind) supportsBreak() bool {
	switch k {
	case blockBreak, blockContinue, blockScriptBreak, blockScriptContinue:
		return true
	default:
		return false
	}
}

func (k blockKind) supportsContinue() bool {
	return k == blockContinue || k == blockScriptContinue
}

// block is one entry on the live block stack. Only the fields relevant to
// its kind are populated; the rest are zero.
type block struct {
	kind blockKind

	// Break / Continue / ScriptBreak / ScriptContinue
	breakLabel    Label
	continueLabel Label
	labelText     string

	// Exception
	state         exceptionState
	startLabel    Label
	catchLabel    Label
	catchVariable *ast.Identifier
	finallyLabel  Label
	endLabel      Label
}

// eventAction tags a blockEvent as opening or closing its block.
type eventAction int

const (
	eventOpen eventAction = iota
	eventClose
)

// blockEvent is one entry in the block-event log: the only record consulted
// by the assembler. The live stack exists solely to answer queries made
// during recording (findBreakTarget, findContinueTarget); it is never
// consulted by finalization.
type blockEvent struct {
	action          eventAction
	operationOffset int
	block           *block
}

// blockStack tracks the live nesting of exception/break/continue regions
// and appends an Open/Close event every time a block is pushed or popped.
type blockStack struct {
	stack  []*block
	events []blockEvent
}

func newBlockStack() *blockStack {
	return &blockStack{}
}

func (b *blockStack) push(blk *block, operationOffset int) {
	b.stack = append(b.stack, blk)
	b.events = append(b.events, blockEvent{action: eventOpen, operationOffset: operationOffset, block: blk})
}

// pop removes and returns the topmost block. Popping an empty stack, or
// popping a block of an unexpected kind, is the caller's responsibility to
// avoid — pop itself only enforces non-emptiness.
func (b *blockStack) pop(operationOffset int) *block {
	if len(b.stack) == 0 {
		invariant("endBlock", "block stack is empty")
	}
	n := len(b.stack) - 1
	blk := b.stack[n]
	b.stack = b.stack[:n]
	b.events = append(b.events, blockEvent{action: eventClose, operationOffset: operationOffset, block: blk})
	return blk
}

func (b *blockStack) top() *block {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *blockStack) isEmpty() bool {
	return len(b.stack) == 0
}

// findBreakTarget walks the live stack from top to bottom and returns the
// breakLabel of the nearest block that supports break and either carries no
// required label text or matches labelText. Returns 0 when nothing matches.
func (b *blockStack) findBreakTarget(labelText string) Label {
	for i := len(b.stack) - 1; i >= 0; i-- {
		blk := b.stack[i]
		if !blk.kind.supportsBreak() {
			continue
		}
		if labelText == "" || blk.labelText == labelText {
			return blk.breakLabel
		}
	}
	return 0
}

// findContinueTarget is the Continue/ScriptContinue analogue of
// findBreakTarget. It returns 0 symmetrically when no target is found.
func (b *blockStack) findContinueTarget(labelText string) Label {
	for i := len(b.stack) - 1; i >= 0; i-- {
		blk := b.stack[i]
		if !blk.kind.supportsContinue() {
			continue
		}
		if labelText == "" || blk.labelText == labelText {
			return blk.continueLabel
		}
	}
	return 0
}

// --- CodeGenerator-level break/continue/exception operations ---

// BeginBreakBlock allocates a fresh break label, pushes a Break block, and
// returns the label so the caller can target it with a break opcode.
func (g *CodeGenerator) BeginBreakBlock(labelText string) Label {
	l := g.labels.define()
	g.blocks.push(&block{kind: blockBreak, breakLabel: l, labelText: labelText}, g.recorder.len())
	return l
}

// EndBreakBlock pops the current Break block and marks its breakLabel at the
// current position.
func (g *CodeGenerator) EndBreakBlock() {
	blk := g.blocks.pop(g.recorder.len())
	if blk.kind != blockBreak {
		invariant("endBreakBlock", "top block is not a Break block")
	}
	if blk.breakLabel > 0 {
		g.labels.mark(blk.breakLabel, g.recorder.len())
	}
}

// BeginContinueBlock takes a pre-existing continue target (typically the
// loop-head label the caller already defined), allocates a new break label,
// and pushes a Continue block.
func (g *CodeGenerator) BeginContinueBlock(continueLabel Label, labelText string) Label {
	l := g.labels.define()
	g.blocks.push(&block{kind: blockContinue, breakLabel: l, continueLabel: continueLabel, labelText: labelText}, g.recorder.len())
	return l
}

// EndContinueBlock pops the current Continue block and marks its breakLabel.
func (g *CodeGenerator) EndContinueBlock() {
	blk := g.blocks.pop(g.recorder.len())
	if blk.kind != blockContinue {
		invariant("endContinueBlock", "top block is not a Continue block")
	}
	if blk.breakLabel > 0 {
		g.labels.mark(blk.breakLabel, g.recorder.len())
	}
}

// BeginScriptBreakBlock hosts a top-level labelled statement without
// synthesizing additional control flow beyond target resolution.
func (g *CodeGenerator) BeginScriptBreakBlock(labelText string) Label {
	l := g.labels.define()
	g.blocks.push(&block{kind: blockScriptBreak, breakLabel: l, labelText: labelText}, g.recorder.len())
	return l
}

// EndScriptBreakBlock pops the current ScriptBreak block and marks its label.
func (g *CodeGenerator) EndScriptBreakBlock() {
	blk := g.blocks.pop(g.recorder.len())
	if blk.kind != blockScriptBreak {
		invariant("endScriptBreakBlock", "top block is not a ScriptBreak block")
	}
	if blk.breakLabel > 0 {
		g.labels.mark(blk.breakLabel, g.recorder.len())
	}
}

// BeginScriptContinueBlock is the ScriptBreak analogue for top-level
// labelled loops: it hosts both break and continue target resolution.
func (g *CodeGenerator) BeginScriptContinueBlock(continueLabel Label, labelText string) Label {
	l := g.labels.define()
	g.blocks.push(&block{kind: blockScriptContinue, breakLabel: l, continueLabel: continueLabel, labelText: labelText}, g.recorder.len())
	return l
}

// EndScriptContinueBlock pops the current ScriptContinue block and marks
// its break label.
func (g *CodeGenerator) EndScriptContinueBlock() {
	blk := g.blocks.pop(g.recorder.len())
	if blk.kind != blockScriptContinue {
		invariant("endScriptContinueBlock", "top block is not a ScriptContinue block")
	}
	if blk.breakLabel > 0 {
		g.labels.mark(blk.breakLabel, g.recorder.len())
	}
}

// FindBreakTarget resolves a break statement's target label. labelText is
// empty for an unlabelled break. Returns 0 when no matching block exists —
// the caller is responsible for diagnosing this as a user input error.
func (g *CodeGenerator) FindBreakTarget(labelText string) Label {
	return g.blocks.findBreakTarget(labelText)
}

// FindContinueTarget resolves a continue statement's target label,
// analogous to FindBreakTarget but restricted to Continue/ScriptContinue
// blocks.
func (g *CodeGenerator) FindContinueTarget(labelText string) Label {
	return g.blocks.findContinueTarget(labelText)
}

// BeginExceptionBlock allocates startLabel and endLabel, marks startLabel at
// the current position, pushes an Exception block in state Try, flags that
// the function now contains protected regions, and returns endLabel so the
// caller can target it from within the try body.
func (g *CodeGenerator) BeginExceptionBlock() Label {
	start := g.labels.define()
	end := g.labels.define()
	g.labels.mark(start, g.recorder.len())
	g.hasProtectedRegions = true
	g.blocks.push(&block{kind: blockException, state: stateTry, startLabel: start, endLabel: end}, g.recorder.len())
	return end
}

// BeginCatchBlock transitions the current Exception block from Try to
// Catch. It emits a Break to endLabel (so the try body's normal completion
// skips past the handler), allocates and marks catchLabel, and emits the
// assignment that binds the caught value to variable.
func (g *CodeGenerator) BeginCatchBlock(variable *ast.Identifier) {
	blk := g.blocks.top()
	if blk == nil || blk.kind != blockException {
		invariant("beginCatchBlock", "no active Exception block")
	}
	if blk.state >= stateCatch {
		invariant("beginCatchBlock", "exception block already past Catch")
	}
	g.recorder.emit(OpBreak, blk.endLabel)
	catch := g.labels.define()
	g.labels.mark(catch, g.recorder.len())
	blk.catchLabel = catch
	blk.catchVariable = variable
	blk.state = stateCatch
	g.recorder.emit(OpAssign, variable, &ast.Generated{Template: "__state.error"})
}

// BeginFinallyBlock transitions the current Exception block to Finally. It
// emits a Break to endLabel, allocates and marks finallyLabel.
func (g *CodeGenerator) BeginFinallyBlock() {
	blk := g.blocks.top()
	if blk == nil || blk.kind != blockException {
		invariant("beginFinallyBlock", "no active Exception block")
	}
	if blk.state >= stateFinally {
		invariant("beginFinallyBlock", "exception block already past Finally")
	}
	g.recorder.emit(OpBreak, blk.endLabel)
	finally := g.labels.define()
	g.labels.mark(finally, g.recorder.len())
	blk.finallyLabel = finally
	blk.state = stateFinally
}

// EndExceptionBlock closes the current Exception block. If the block never
// reached Finally, it emits a Break to endLabel (normal completion path);
// otherwise it emits Endfinally so the runtime reissues the pending abrupt
// completion that entered the finally handler. endLabel is marked and the
// block's state is set to Done.
func (g *CodeGenerator) EndExceptionBlock() {
	blk := g.blocks.top()
	if blk == nil || blk.kind != blockException {
		invariant("endExceptionBlock", "no active Exception block")
	}
	if blk.state < stateCatch {
		invariant("endExceptionBlock", "exception block needs a Catch or Finally before it can end")
	}
	if blk.state < stateFinally {
		g.recorder.emit(OpBreak, blk.endLabel)
	} else {
		g.recorder.emit(OpEndfinally)
	}
	g.labels.mark(blk.endLabel, g.recorder.len())
	blk.state = stateDone
	g.blocks.pop(g.recorder.len())
}
