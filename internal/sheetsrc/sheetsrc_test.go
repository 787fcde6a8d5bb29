package sheetsrc

import "testing"

func TestCellString(t *testing.T) {
	row := []interface{}{" https://youtu.be/dQw4w9WgXcQ ", "Processed"}

	if got := cellString(row, 0); got != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("url cell = %q", got)
	}
	if got := cellString(row, 1); got != "Processed" {
		t.Errorf("status cell = %q", got)
	}
	// Short rows: a missing status cell reads as unprocessed.
	if got := cellString(row[:1], 1); got != "" {
		t.Errorf("missing cell = %q, want empty", got)
	}
	// Non-string cells are treated as empty rather than panicking.
	if got := cellString([]interface{}{42.0}, 0); got != "" {
		t.Errorf("numeric cell = %q, want empty", got)
	}
}
