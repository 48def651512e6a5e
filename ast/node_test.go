package ast

import "testing"

func TestFunctionKind_String(t *testing.T) {
	cases := map[FunctionKind]string{
		FunctionDeclaration: "function",
		Method:              "method",
		Getter:              "getter",
		FunctionExpression:  "function-expression",
		ArrowFunction:       "arrow",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("FunctionKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestBlockStmt_SatisfiesBlock(t *testing.T) {
	var _ Block = &BlockStmt{}
}

func TestGenerated_SatisfiesStatementAndExpression(t *testing.T) {
	var _ Statement = &Generated{}
	var _ Expression = &Generated{}
}

func TestLabelRef_CaseIndex_NilResolver(t *testing.T) {
	ref := &LabelRef{ID: 1}
	if idx := ref.CaseIndex(); idx != -1 {
		t.Errorf("expected -1 with a nil resolver, got %d", idx)
	}
}

type stubResolver struct{ index int }

func (s stubResolver) ResolveLabel(int) int { return s.index }

func TestLabelRef_CaseIndex_DelegatesToResolver(t *testing.T) {
	ref := &LabelRef{ID: 7, Resolver: stubResolver{index: 3}}
	if idx := ref.CaseIndex(); idx != 3 {
		t.Errorf("expected resolver's value 3, got %d", idx)
	}
}
