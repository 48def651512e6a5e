package genlower

import (
	"fmt"

	"github.com/suspendlang/genlower/ast"
)

// labelRef wraps a Label as a forward-reference-safe Node using the
// CodeGenerator itself as the ast.LabelResolver: by the time anything reads
// CaseIndex(), finalize() has already populated labelNumbers for the whole
// function, so forward references resolve correctly regardless of
// recording order.
func (g *CodeGenerator) labelRef(l Label) *ast.LabelRef {
	return &ast.LabelRef{ID: int(l), Resolver: g}
}

// ResolveLabel implements ast.LabelResolver.
func (g *CodeGenerator) ResolveLabel(id int) int {
	if n, ok := g.labelNumbers[Label(id)]; ok {
		return n
	}
	return -1
}

// CreateInlineBreak returns a statement fragment evaluating to
// return ["break", L];
func (g *CodeGenerator) CreateInlineBreak(l Label) ast.Node {
	return &ast.Generated{
		Template:      "return [\"break\", %label%];",
		Substitutions: map[string]ast.Node{"label": g.labelRef(l)},
	}
}

// CreateInlineReturn returns return ["return", e]; or return ["return"];
// when expr is nil.
func (g *CodeGenerator) CreateInlineReturn(expr ast.Expression) ast.Node {
	if expr == nil {
		return &ast.Generated{Template: "return [\"return\"];"}
	}
	return &ast.Generated{
		Template:      "return [\"return\", %value%];",
		Substitutions: map[string]ast.Node{"value": expr},
	}
}

// createInlineYield is the internal yield factory: return ["yield", e]; or
// return ["yield"]; when expr is nil.
func createInlineYield(expr ast.Expression) ast.Node {
	if expr == nil {
		return &ast.Generated{Template: "return [\"yield\"];"}
	}
	return &ast.Generated{
		Template:      "return [\"yield\", %value%];",
		Substitutions: map[string]ast.Node{"value": expr},
	}
}

func createInlineEndfinally() ast.Node {
	return &ast.Generated{Template: "return [\"endfinally\"];"}
}

func createInlineThrow(expr ast.Expression) ast.Node {
	return &ast.Generated{
		Template:      "throw %value%;",
		Substitutions: map[string]ast.Node{"value": expr},
	}
}

func createInlineAssign(lhs, rhs ast.Node) ast.Node {
	return &ast.Generated{
		Template:      "%target% = %value%;",
		Substitutions: map[string]ast.Node{"target": lhs, "value": rhs},
	}
}

func createConditionalBreak(negate bool, cond ast.Expression, l *ast.LabelRef) ast.Node {
	template := "if (%cond%) { return [\"break\", %label%]; }"
	if negate {
		template = "if (!(%cond%)) { return [\"break\", %label%]; }"
	}
	return &ast.Generated{
		Template:      template,
		Substitutions: map[string]ast.Node{"cond": cond, "label": l},
	}
}

func fallthroughFixup(caseIndex int) ast.Node {
	return &ast.Generated{Template: fmt.Sprintf("__state.label = %d;", caseIndex)}
}

func trysInitStatement() ast.Node {
	return &ast.Generated{Template: "__state.trys = [];"}
}

func nullLiteral() ast.Node {
	return &ast.Generated{Template: "null"}
}
