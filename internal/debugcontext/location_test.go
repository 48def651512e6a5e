package debugcontext

import "testing"

func TestLocation_String(t *testing.T) {
	t.Run("with column", func(t *testing.T) {
		loc := Loc("main.gen", 12, 5)
		if loc.String() != "main.gen:12:5" {
			t.Errorf("Expected 'main.gen:12:5', got '%s'", loc.String())
		}
	})

	t.Run("without column", func(t *testing.T) {
		loc := Loc("main.gen", 12, 0)
		if loc.String() != "main.gen:12" {
			t.Errorf("Expected 'main.gen:12', got '%s'", loc.String())
		}
	})
}

func TestLocation_Accessors(t *testing.T) {
	loc := Loc("test.gen", 7, 3)

	if loc.FilePath() != "test.gen" {
		t.Errorf("Expected FilePath 'test.gen', got '%s'", loc.FilePath())
	}
	if loc.Line() != 7 {
		t.Errorf("Expected Line 7, got %d", loc.Line())
	}
	if loc.Column() != 3 {
		t.Errorf("Expected Column 3, got %d", loc.Column())
	}
}
