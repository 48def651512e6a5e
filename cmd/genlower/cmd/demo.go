package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suspendlang/genlower"
	"github.com/suspendlang/genlower/ast"
	"github.com/suspendlang/genlower/internal/debugcontext"
	"github.com/suspendlang/genlower/render"
)

var demoScenario string

var demoCmd = &cobra.Command{
	Use:     "demo",
	GroupID: "demo",
	Short:   "Lower a handful of canned recordings and print the assembled output",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, ok := scenarios[demoScenario]
		if !ok {
			return fmt.Errorf("unknown scenario %q (try one of: %s)", demoScenario, scenarioNames())
		}
		return scenario(cmd)
	},
}

func init() {
	demoCmd.Flags().StringVarP(&demoScenario, "scenario", "s", "all", "scenario to lower: "+scenarioNames())
}

func scenarioNames() string {
	names := ""
	for _, n := range []string{"empty", "yield", "break-target", "try-finally", "try-catch", "fallthrough", "loop", "labelled-loop", "all"} {
		if names != "" {
			names += ", "
		}
		names += n
	}
	return names
}

var scenarios = map[string]func(*cobra.Command) error{
	"empty":        func(cmd *cobra.Command) error { return printFunction(cmd, "empty", emptyGenerator()) },
	"yield":        func(cmd *cobra.Command) error { return printFunction(cmd, "yield", singleYield()) },
	"break-target": func(cmd *cobra.Command) error { return breakTargetResolution(cmd) },
	"try-finally":  func(cmd *cobra.Command) error { return printFunction(cmd, "try-finally", tryFinally()) },
	"try-catch":    func(cmd *cobra.Command) error { return printFunction(cmd, "try-catch", tryCatch()) },
	"fallthrough":  func(cmd *cobra.Command) error { return printFunction(cmd, "fallthrough", conditionalFallthrough()) },
	"loop":         func(cmd *cobra.Command) error { return printFunction(cmd, "loop", loopWithYieldAndFinally()) },
	"labelled-loop": func(cmd *cobra.Command) error {
		return printFunction(cmd, "labelled-loop", labelledLoop())
	},
	"all": func(cmd *cobra.Command) error {
		for _, name := range []string{"empty", "yield", "break-target", "try-finally", "try-catch", "fallthrough", "loop", "labelled-loop"} {
			if err := scenarios[name](cmd); err != nil {
				return err
			}
		}
		return nil
	},
}

func printFunction(cmd *cobra.Command, name string, fn *genlower.Function) error {
	text, err := render.Function(fn)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", name, text)
	return nil
}

func loc(line int) debugcontext.Location {
	return debugcontext.Loc("demo.gen", line, 0)
}

// emptyGenerator mirrors scenario S1: record nothing, finalize as generator.
func emptyGenerator() *genlower.Function {
	g := genlower.NewCodeGenerator()
	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "empty", loc(1))
}

// singleYield mirrors scenario S2: a single Yield with no surrounding
// control flow.
func singleYield() *genlower.Function {
	g := genlower.NewCodeGenerator()
	g.SetLocation(loc(1))
	g.Emit(genlower.OpYield, &ast.Generated{Template: "42"})
	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "singleYield", loc(1))
}

// breakTargetResolution mirrors scenario S3: nested break blocks resolved
// by label text.
func breakTargetResolution(cmd *cobra.Command) error {
	g := genlower.NewCodeGenerator()
	outer := g.BeginBreakBlock("outer")
	inner := g.BeginBreakBlock("")

	unlabelled := g.FindBreakTarget("")
	labelled := g.FindBreakTarget("outer")

	g.EndBreakBlock()
	g.EndBreakBlock()

	fmt.Fprintf(cmd.OutOrStdout(), "// break-target\nouter=%d inner=%d findBreakTarget()=%d findBreakTarget(\"outer\")=%d\n",
		outer, inner, unlabelled, labelled)
	return nil
}

// tryFinally mirrors scenario S4: a protected region with only a finally
// handler.
func tryFinally() *genlower.Function {
	g := genlower.NewCodeGenerator()
	g.SetLocation(loc(1))
	g.BeginExceptionBlock()
	g.EmitNode(&ast.Generated{Template: "a();"})
	g.BeginFinallyBlock()
	g.EmitNode(&ast.Generated{Template: "b();"})
	g.EndExceptionBlock()
	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "tryFinally", loc(1))
}

// tryCatch mirrors scenario S5: a protected region with only a catch
// handler.
func tryCatch() *genlower.Function {
	g := genlower.NewCodeGenerator()
	g.SetLocation(loc(1))
	g.BeginExceptionBlock()
	g.EmitNode(&ast.Generated{Template: "a();"})
	e := g.DeclareLocal("e")
	g.BeginCatchBlock(e)
	g.EmitNode(&ast.Generated{Template: "b();"})
	g.EndExceptionBlock()
	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "tryCatch", loc(1))
}

// conditionalFallthrough mirrors scenario S6: a conditional branch whose
// fall-through case needs a __state.label fix-up.
func conditionalFallthrough() *genlower.Function {
	g := genlower.NewCodeGenerator()
	g.SetLocation(loc(1))
	l := g.DefineLabel()
	cond := &ast.Generated{Template: "cond"}
	g.Emit(genlower.OpBrTrue, l, cond)
	g.EmitNode(&ast.Generated{Template: "a();"})
	g.MarkLabel(l)
	g.EmitNode(&ast.Generated{Template: "b();"})
	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "conditionalFallthrough", loc(1))
}

// loopWithYieldAndFinally combines an unlabelled loop, a yield inside the
// loop body, and a try/finally around that yield — the shape a real visitor
// produces for `for (...) { try { yield x; } finally { cleanup(); } }`.
func loopWithYieldAndFinally() *genlower.Function {
	g := genlower.NewCodeGenerator()
	g.SetLocation(loc(1))

	loopHead := g.DefineLabel()
	g.MarkLabel(loopHead)
	breakLabel := g.BeginContinueBlock(loopHead, "")

	cond := &ast.Generated{Template: "i < n"}
	g.Emit(genlower.OpBrFalse, breakLabel, cond)

	g.BeginExceptionBlock()
	g.Emit(genlower.OpYield, &ast.Generated{Template: "i"})
	g.BeginFinallyBlock()
	g.EmitNode(&ast.Generated{Template: "cleanup();"})
	g.EndExceptionBlock()

	g.Emit(genlower.OpBreak, loopHead)
	g.EndContinueBlock()

	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "loopWithYieldAndFinally", loc(1))
}

// labelledLoop mirrors `outer: for (...) { if (x) break outer; work(); }` — a
// top-level labelled statement, hosted by the Script variants rather than
// the ordinary Break/Continue blocks the other loop scenario uses.
func labelledLoop() *genlower.Function {
	g := genlower.NewCodeGenerator()
	g.SetLocation(loc(1))

	loopHead := g.DefineLabel()
	g.MarkLabel(loopHead)
	breakLabel := g.BeginScriptContinueBlock(loopHead, "outer")

	g.Emit(genlower.OpBrTrue, breakLabel, &ast.Generated{Template: "x"})
	g.EmitNode(&ast.Generated{Template: "work();"})
	g.Emit(genlower.OpBreak, g.FindContinueTarget("outer"))

	g.EndScriptContinueBlock()

	return g.BuildGeneratorFunction(ast.FunctionDeclaration, "labelledLoop", loc(1))
}
