package genlower

import (
	"strings"
	"testing"
)

func TestInvariantError_Message(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected invariant to panic")
		}
		err, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("expected *InvariantError, got %T", r)
		}
		if err.Op != "markLabel" {
			t.Errorf("expected Op 'markLabel', got %q", err.Op)
		}
		if !strings.Contains(err.Error(), "label 9") {
			t.Errorf("expected error message to mention the label id, got %q", err.Error())
		}
	}()
	invariant("markLabel", "label %d was never defined", 9)
}
