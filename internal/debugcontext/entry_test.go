package debugcontext

import "testing"

func TestEntry_WithSnippet(t *testing.T) {
	entry := &Entry{severity: SeverityError, message: "test"}

	returned := entry.WithSnippet("  break L1")

	if returned != entry {
		t.Fatal("WithSnippet must return the same *Entry for chaining")
	}
	if entry.Snippet() != "  break L1" {
		t.Errorf("Expected snippet '  break L1', got '%s'", entry.Snippet())
	}
}

func TestEntry_WithHint(t *testing.T) {
	entry := &Entry{severity: SeverityWarning, message: "test"}

	returned := entry.WithHint("did you mean to call markLabel?")

	if returned != entry {
		t.Fatal("WithHint must return the same *Entry for chaining")
	}
	if entry.Hint() != "did you mean to call markLabel?" {
		t.Errorf("Expected hint \"did you mean to call markLabel?\", got '%s'", entry.Hint())
	}
}

func TestEntry_Chaining(t *testing.T) {
	entry := &Entry{severity: SeverityError, message: "unresolved label"}

	entry.WithSnippet("  brtrue L1, cond").WithHint("did you mean to call markLabel?")

	if entry.Snippet() != "  brtrue L1, cond" {
		t.Errorf("Expected snippet '  brtrue L1, cond', got '%s'", entry.Snippet())
	}
	if entry.Hint() != "did you mean to call markLabel?" {
		t.Errorf("Expected hint, got '%s'", entry.Hint())
	}
}

func TestEntry_String(t *testing.T) {
	entry := &Entry{
		severity: SeverityError,
		phase:    "record",
		message:  "unresolved label 'L9'",
		location: Loc("main.gen", 12, 0),
	}

	expected := "error [record] main.gen:12: unresolved label 'L9'"
	if entry.String() != expected {
		t.Errorf("Expected %q, got %q", expected, entry.String())
	}
}

func TestEntry_Accessors(t *testing.T) {
	loc := Loc("test.gen", 5, 3)
	entry := &Entry{
		severity: SeverityWarning,
		phase:    "assemble",
		message:  "test message",
		location: loc,
		snippet:  "some code",
		hint:     "fix it",
	}

	if entry.Severity() != SeverityWarning {
		t.Errorf("Expected severity '%s', got '%s'", SeverityWarning, entry.Severity())
	}
	if entry.Phase() != "assemble" {
		t.Errorf("Expected phase 'assemble', got '%s'", entry.Phase())
	}
	if entry.Message() != "test message" {
		t.Errorf("Expected message 'test message', got '%s'", entry.Message())
	}
	if entry.Location() != loc {
		t.Errorf("Expected location %v, got %v", loc, entry.Location())
	}
	if entry.Snippet() != "some code" {
		t.Errorf("Expected snippet 'some code', got '%s'", entry.Snippet())
	}
	if entry.Hint() != "fix it" {
		t.Errorf("Expected hint 'fix it', got '%s'", entry.Hint())
	}
}
