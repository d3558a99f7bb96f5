package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"bike", "20:00"},
		{"night bus", "1:05:00"},
	}, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"bike         20:00",
		"night bus  1:05:00",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFormatMeasuresWideRunesAndShortRows(t *testing.T) {
	got := Format([][]string{{"駅", "a"}, {"x"}}, nil)
	if got[0] != "駅  a" {
		t.Fatalf("unexpected wide row %q", got[0])
	}
	if got[1] != "x   " {
		t.Fatalf("expected short row padded to the last column, got %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
