package ast

// LabelResolver resolves a raw label id to the switch-case index it was
// bound to during finalization.
type LabelResolver interface {
	ResolveLabel(id int) int
}

// LabelRef is the generated-label node: it carries a raw label id and a
// resolver rather than an eager integer, so a label reference emitted
// before its target is marked still prints correctly once the whole pass
// completes and every forward reference has been resolved.
type LabelRef struct {
	ID       int
	Resolver LabelResolver
}

func (*LabelRef) nodeKind() string      { return "LabelRef" }
func (*LabelRef) expressionNode()       {}

// CaseIndex returns the resolved case index, or -1 if the label was never
// marked.
func (l *LabelRef) CaseIndex() int {
	if l.Resolver == nil {
		return -1
	}
	return l.Resolver.ResolveLabel(l.ID)
}
