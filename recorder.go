package genlower

import "github.com/suspendlang/genlower/ast"

// recorder is the append-only opcode log. It never inspects or rewrites a
// previously recorded Operation; emit only ever appends.
type recorder struct {
	operations []Operation
	location   *locationStack
}

func newRecorder(loc *locationStack) *recorder {
	return &recorder{location: loc}
}

func (r *recorder) len() int { return len(r.operations) }

// emit appends a triple (code, args, relatedLocation). Two sugar behaviors
// apply to the first two positional args: a bare string literal is
// auto-wrapped into a Generated node, consuming the following positional as
// its substitution map. A nil payload at position 0 for OpStatement is
// silently dropped — the visitor relies on this to emit conditional
// statements without a branch of its own.
func (r *recorder) emit(code OpCode, args ...any) {
	if code == OpStatement && (len(args) == 0 || args[0] == nil) {
		return
	}
	args = wrapGeneratedSugar(args)
	r.operations = append(r.operations, Operation{
		Code:     code,
		Args:     args,
		Location: r.location.current,
	})
}

// emitNode either recurses into the statements of a compound block node or
// issues a single Statement opcode for a non-compound node.
func (r *recorder) emitNode(node ast.Node) {
	if blk, ok := node.(ast.Block); ok {
		for _, stmt := range blk.Body() {
			r.emit(OpStatement, stmt)
		}
		return
	}
	r.emit(OpStatement, node)
}

// wrapGeneratedSugar implements the string-literal wrapping sugar over the
// first two positional arguments of an emit call.
func wrapGeneratedSugar(args []any) []any {
	out := make([]any, 0, len(args))
	i := 0
	for i < len(args) {
		if i > 1 {
			out = append(out, args[i])
			i++
			continue
		}
		text, isString := args[i].(string)
		if !isString {
			out = append(out, args[i])
			i++
			continue
		}
		var subs map[string]ast.Node
		consumed := 1
		if i+1 < len(args) {
			if m, ok := args[i+1].(map[string]ast.Node); ok {
				subs = m
				consumed = 2
			}
		}
		out = append(out, &ast.Generated{Template: text, Substitutions: subs})
		i += consumed
	}
	return out
}
