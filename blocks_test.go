package genlower

import "testing"

// TestBreakTargetResolution is scenario S3: a labelled outer break block
// nesting an unlabelled inner one. findBreakTarget() (no text) must resolve
// to the inner block; findBreakTarget("outer") must resolve to the outer
// one.
func TestBreakTargetResolution(t *testing.T) {
	g := NewCodeGenerator()

	outer := g.BeginBreakBlock("outer")
	inner := g.BeginBreakBlock("")

	if got := g.FindBreakTarget(""); got != inner {
		t.Errorf("FindBreakTarget(\"\") = %d, want inner label %d", got, inner)
	}
	if got := g.FindBreakTarget("outer"); got != outer {
		t.Errorf("FindBreakTarget(\"outer\") = %d, want outer label %d", got, outer)
	}

	g.EndBreakBlock()
	g.EndBreakBlock()
}

func TestFindBreakTarget_NoMatchReturnsZero(t *testing.T) {
	g := NewCodeGenerator()
	g.BeginBreakBlock("loop")
	defer g.EndBreakBlock()

	if got := g.FindBreakTarget("missing"); got != 0 {
		t.Errorf("expected 0 for unmatched label text, got %d", got)
	}
}

func TestFindContinueTarget_NoMatchReturnsZero(t *testing.T) {
	g := NewCodeGenerator()

	if got := g.FindContinueTarget(""); got != 0 {
		t.Errorf("expected 0 when no Continue block is active, got %d", got)
	}
}

func TestFindContinueTarget_ResolvesNearestContinueBlock(t *testing.T) {
	g := NewCodeGenerator()
	head := g.DefineLabel()
	g.MarkLabel(head)

	g.BeginContinueBlock(head, "loop")
	defer g.EndContinueBlock()

	if got := g.FindContinueTarget(""); got != head {
		t.Errorf("FindContinueTarget(\"\") = %d, want continue target %d", got, head)
	}
	if got := g.FindContinueTarget("loop"); got != head {
		t.Errorf("FindContinueTarget(\"loop\") = %d, want continue target %d", got, head)
	}

	// Label text that matches no enclosing Continue block resolves to 0.
	if got := g.FindContinueTarget("other"); got != 0 {
		t.Errorf("expected 0 for mismatched label text, got %d", got)
	}
}

// TestScriptBreakBlock_TargetResolution mirrors TestBreakTargetResolution
// for a top-level labelled statement: a ScriptBreak block must resolve like
// a Break block, participating in findBreakTarget by label text.
func TestScriptBreakBlock_TargetResolution(t *testing.T) {
	g := NewCodeGenerator()

	outer := g.BeginScriptBreakBlock("outer")
	inner := g.BeginBreakBlock("")

	if got := g.FindBreakTarget(""); got != inner {
		t.Errorf("FindBreakTarget(\"\") = %d, want inner label %d", got, inner)
	}
	if got := g.FindBreakTarget("outer"); got != outer {
		t.Errorf("FindBreakTarget(\"outer\") = %d, want outer label %d", got, outer)
	}

	g.EndBreakBlock()
	g.EndScriptBreakBlock()
}

// TestScriptContinueBlock_TargetResolution mirrors
// TestFindContinueTarget_ResolvesNearestContinueBlock for a top-level
// labelled loop: a ScriptContinue block hosts both break and continue
// target resolution.
func TestScriptContinueBlock_TargetResolution(t *testing.T) {
	g := NewCodeGenerator()
	head := g.DefineLabel()
	g.MarkLabel(head)

	brk := g.BeginScriptContinueBlock(head, "loop")

	if got := g.FindContinueTarget(""); got != head {
		t.Errorf("FindContinueTarget(\"\") = %d, want continue target %d", got, head)
	}
	if got := g.FindContinueTarget("loop"); got != head {
		t.Errorf("FindContinueTarget(\"loop\") = %d, want continue target %d", got, head)
	}
	if got := g.FindBreakTarget("loop"); got != brk {
		t.Errorf("FindBreakTarget(\"loop\") = %d, want break label %d", got, brk)
	}

	g.EndScriptContinueBlock()
}

func TestBlockStack_BalancedEvents(t *testing.T) {
	bs := newBlockStack()
	a := &block{kind: blockBreak}
	b := &block{kind: blockBreak}

	bs.push(a, 0)
	bs.push(b, 1)
	bs.pop(2)
	bs.pop(3)

	if len(bs.events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(bs.events))
	}
	if bs.events[0].action != eventOpen || bs.events[0].block != a {
		t.Error("expected first event to open block a")
	}
	if bs.events[1].action != eventOpen || bs.events[1].block != b {
		t.Error("expected second event to open block b")
	}
	if bs.events[2].action != eventClose || bs.events[2].block != b {
		t.Error("expected third event to close block b (LIFO)")
	}
	if bs.events[3].action != eventClose || bs.events[3].block != a {
		t.Error("expected fourth event to close block a (LIFO)")
	}
}

func TestBlockStack_PopEmptyPanics(t *testing.T) {
	bs := newBlockStack()

	defer func() {
		if recover() == nil {
			t.Error("expected pop of an empty block stack to panic")
		}
	}()
	bs.pop(0)
}

func TestExceptionBlock_StateMonotonicity(t *testing.T) {
	g := NewCodeGenerator()
	g.BeginExceptionBlock()

	blk := g.blocks.top()
	if blk.state != stateTry {
		t.Fatalf("expected state Try after beginExceptionBlock, got %d", blk.state)
	}

	e := g.DeclareLocal("e")
	g.BeginCatchBlock(e)
	if blk.state != stateCatch {
		t.Errorf("expected state Catch after beginCatchBlock, got %d", blk.state)
	}

	g.BeginFinallyBlock()
	if blk.state != stateFinally {
		t.Errorf("expected state Finally after beginFinallyBlock, got %d", blk.state)
	}

	g.EndExceptionBlock()
	if blk.state != stateDone {
		t.Errorf("expected state Done after endExceptionBlock, got %d", blk.state)
	}
}

func TestBeginCatchBlock_PastCatchPanics(t *testing.T) {
	g := NewCodeGenerator()
	g.BeginExceptionBlock()
	g.BeginFinallyBlock()

	defer func() {
		if recover() == nil {
			t.Error("expected beginCatchBlock after Finally to panic")
		}
	}()
	g.BeginCatchBlock(g.DeclareLocal("e"))
}

func TestEndExceptionBlock_RequiresCatchOrFinally(t *testing.T) {
	g := NewCodeGenerator()
	g.BeginExceptionBlock()

	defer func() {
		if recover() == nil {
			t.Error("expected endExceptionBlock with neither Catch nor Finally to panic")
		}
	}()
	g.EndExceptionBlock()
}
