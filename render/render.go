// Package render stands in for the downstream emitter: it walks the node
// tree produced by genlower.BuildGeneratorFunction / BuildAsyncFunction and
// serializes it to text. The core itself never produces text directly —
// this package is the one place that does.
package render

import (
	"fmt"
	"strings"

	"github.com/suspendlang/genlower"
	"github.com/suspendlang/genlower/ast"
)

// Function renders a *genlower.Function to its textual form.
func Function(fn *genlower.Function) (string, error) {
	var b strings.Builder

	b.WriteString(signature(fn))
	b.WriteString(" {\n")

	if decl := localsDecl(fn.Locals); decl != "" {
		b.WriteString(indent(decl))
		b.WriteString("\n")
	}
	for _, f := range fn.Functions {
		text, err := node(f)
		if err != nil {
			return "", err
		}
		b.WriteString(indent(text))
		b.WriteString("\n")
	}

	body, err := body(fn)
	if err != nil {
		return "", err
	}
	b.WriteString(indent(body))
	b.WriteString("\n}\n")

	return b.String(), nil
}

func signature(fn *genlower.Function) string {
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = p.Name
	}
	switch fn.Kind {
	case ast.Method:
		return fmt.Sprintf("%s(%s)", fn.Name, strings.Join(params, ", "))
	case ast.Getter:
		return fmt.Sprintf("get %s(%s)", fn.Name, strings.Join(params, ", "))
	case ast.FunctionExpression:
		return fmt.Sprintf("function %s(%s)", fn.Name, strings.Join(params, ", "))
	case ast.ArrowFunction:
		return fmt.Sprintf("(%s) =>", strings.Join(params, ", "))
	default:
		return fmt.Sprintf("function %s(%s)", fn.Name, strings.Join(params, ", "))
	}
}

func localsDecl(locals []*ast.Identifier) string {
	if len(locals) == 0 {
		return ""
	}
	names := make([]string, len(locals))
	for i, l := range locals {
		names[i] = l.Name
	}
	return fmt.Sprintf("var %s;", strings.Join(names, ", "))
}

func body(fn *genlower.Function) (string, error) {
	clauses, err := renderClauses(fn.Clauses)
	if err != nil {
		return "", err
	}
	inner := fmt.Sprintf("function (__state) {\n%s\n}", indent(fmt.Sprintf("switch (__state.label) {\n%s\n}", indent(clauses))))

	if !fn.Async {
		return fmt.Sprintf("return __generator(%s);", inner), nil
	}

	promiseCtor, err := node(fn.PromiseCtor)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"return new %s(function (__resolve) {\n%s\n});",
		promiseCtor,
		indent(fmt.Sprintf("__resolve(__awaiter(__generator(%s)));", inner)),
	), nil
}

func renderClauses(clauses []*genlower.Clause) (string, error) {
	var b strings.Builder
	for i, c := range clauses {
		if i > 0 {
			b.WriteString("\n")
		}
		stmts, err := renderStatements(c.Statements)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "case %d: {\n%s\n}", c.Index, indent(stmts))
	}
	return b.String(), nil
}

func renderStatements[N ast.Node](stmts []N) (string, error) {
	rendered := make([]string, len(stmts))
	for i, s := range stmts {
		text, err := node(s)
		if err != nil {
			return "", err
		}
		rendered[i] = text
	}
	return strings.Join(rendered, "\n"), nil
}

// node renders a single ast.Node to text. The core only ever hands the
// emitter nodes it built itself (Generated, LabelRef) plus opaque nodes from
// the upstream factory (Identifier, FunctionLike, ...); node() handles both.
func node(n ast.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	switch v := n.(type) {
	case *ast.Generated:
		return renderGenerated(v)
	case *ast.LabelRef:
		idx := v.CaseIndex()
		if idx < 0 {
			return "", fmt.Errorf("render: label %d was never marked", v.ID)
		}
		return fmt.Sprintf("%d", idx), nil
	case *ast.Identifier:
		return v.Name, nil
	case *ast.Parameter:
		return v.Name, nil
	case *ast.FunctionLike:
		return renderFunctionLike(v)
	case *ast.BlockStmt:
		return renderStatements(v.Statements)
	default:
		return "", fmt.Errorf("render: unsupported node type %T", n)
	}
}

func renderGenerated(g *ast.Generated) (string, error) {
	text := g.Template
	for key, value := range g.Substitutions {
		rendered, err := node(value)
		if err != nil {
			return "", err
		}
		text = strings.ReplaceAll(text, "%"+key+"%", rendered)
	}
	return text, nil
}

func renderFunctionLike(f *ast.FunctionLike) (string, error) {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Name
	}
	var bodyText string
	if f.Body != nil {
		text, err := renderStatements(f.Body.Statements)
		if err != nil {
			return "", err
		}
		bodyText = text
	}
	return fmt.Sprintf("function %s(%s) {\n%s\n}", f.Name, strings.Join(params, ", "), indent(bodyText)), nil
}

func indent(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l == "" {
			continue
		}
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
