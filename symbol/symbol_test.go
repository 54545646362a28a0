package symbol

import "testing"

func TestFit(t *testing.T) {
	fits := []struct {
		n    int
		side int
	}{
		{0, 10},
		{1, 10},
		{3, 10},
		{4, 12},
		{6, 14},
		{9, 16},
		{12, 16},
		{13, 18},
		{19, 20},
		{23, 22},
		{30, 22},
	}

	for _, f := range fits {
		s, err := Fit(f.n)
		if err != nil {
			t.Fatal(err)
		}
		if s.Side != f.side {
			t.Fatalf("Fit(%d) Expected: %d Got: %d\n", f.n, f.side, s.Side)
		}
	}

	if _, err := Fit(31); err == nil {
		t.Fatal("expected error for oversized payload")
	}
	if _, err := Fit(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestBySide(t *testing.T) {
	for _, expected := range Sizes {
		s, err := BySide(expected.Side)
		if err != nil {
			t.Fatal(err)
		}
		if s != expected {
			t.Fatalf("BySide(%d) Expected: %+v Got: %+v\n", expected.Side, expected, s)
		}
	}

	if _, err := BySide(11); err == nil {
		t.Fatal("expected error for unknown side")
	}
}

func TestTotals(t *testing.T) {
	totals := map[int]int{10: 8, 12: 12, 14: 18, 16: 24, 18: 32, 20: 40, 22: 50}

	for _, s := range Sizes {
		if s.Total() != totals[s.Side] {
			t.Fatalf("%s total Expected: %d Got: %d\n", s, totals[s.Side], s.Total())
		}
	}
}
