package genlower

import "github.com/suspendlang/genlower/internal/debugcontext"

// Diagnostics wraps a *debugcontext.DebugContext so the core can optionally
// record trace entries as it runs. The core never reports user input errors
// itself — an unbound break/continue target is returned to the caller as a
// zero Label, per FindBreakTarget/FindContinueTarget — but a caller wiring
// up CLI or test diagnostics may still want a trace of what finalization
// did, and this is where it is recorded.
type Diagnostics struct {
	ctx *debugcontext.DebugContext
}

// NewDiagnostics wraps an existing context. A nil ctx is valid: every method
// on *Diagnostics becomes a no-op, as it does on a nil *Diagnostics.
func NewDiagnostics(ctx *debugcontext.DebugContext) *Diagnostics {
	return &Diagnostics{ctx: ctx}
}

func (d *Diagnostics) trace(loc debugcontext.Location, message string) {
	if d == nil || d.ctx == nil {
		return
	}
	d.ctx.Trace(loc, message)
}

func (d *Diagnostics) setPhase(phase string) {
	if d == nil || d.ctx == nil {
		return
	}
	d.ctx.SetPhase(phase)
}
