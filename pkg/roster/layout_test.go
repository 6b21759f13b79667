package roster

import "testing"

func line(text string, x0, y0, x1, y1 int) Line {
	return Line{Text: text, BBox: BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}}
}

func TestGroupLinesIntoRows(t *testing.T) {
	lines := []Line{
		line("Alice Wonderland", 60, 100, 350, 120),
		line("Soda Brewery", 480, 102, 680, 122),
		line("Cake Studio", 820, 101, 980, 121),
		line("Bob Marley", 60, 200, 300, 220),
		line("Flower Shop", 820, 203, 980, 223),
	}

	rows := GroupLinesIntoRows(lines)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(rows))
	}
	if len(rows[0].Lines) != 3 || len(rows[1].Lines) != 2 {
		t.Fatalf("expected row sizes 3 and 2 got %d and %d", len(rows[0].Lines), len(rows[1].Lines))
	}
}

func TestGroupLinesIntoRowsOrderIndependent(t *testing.T) {
	lines := []Line{
		line("Alice Wonderland", 60, 100, 350, 120),
		line("Soda Brewery", 480, 102, 680, 122),
		line("Bob Marley", 60, 200, 300, 220),
	}
	reversed := []Line{lines[2], lines[1], lines[0]}

	a := GroupLinesIntoRows(lines)
	b := GroupLinesIntoRows(reversed)
	if len(a) != len(b) {
		t.Fatalf("row count depends on input order: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if len(a[i].Lines) != len(b[i].Lines) {
			t.Fatalf("row %d membership depends on input order: %d vs %d", i, len(a[i].Lines), len(b[i].Lines))
		}
	}
}

func TestSplitRowIntoColumnsThree(t *testing.T) {
	row := []Line{
		line("Alice Wonderland", 60, 100, 350, 120),
		line("Soda Brewery", 480, 102, 680, 122),
		line("Cake Studio", 820, 101, 980, 121),
	}
	cols := SplitRowIntoColumns(row, 1000)
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns got %d", len(cols))
	}
	if cols[0][0].Text != "Alice Wonderland" || cols[1][0].Text != "Soda Brewery" || cols[2][0].Text != "Cake Studio" {
		t.Fatalf("unexpected column assignment: %v %v %v", cols[0], cols[1], cols[2])
	}
}

func TestSplitRowIntoColumnsTwo(t *testing.T) {
	row := []Line{
		line("Alice Wonderland", 60, 100, 350, 120),
		line("Cake Studio", 700, 101, 900, 121),
	}
	cols := SplitRowIntoColumns(row, 1000)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns got %d", len(cols))
	}
	if cols[0][0].Text != "Alice Wonderland" || cols[1][0].Text != "Cake Studio" {
		t.Fatalf("unexpected column assignment: %v %v", cols[0], cols[1])
	}
}

func TestSplitRowIntoColumnsFractionalFallback(t *testing.T) {
	// Tightly packed row with no detectable gaps falls back to fixed bands.
	row := []Line{
		line("Alice", 20, 100, 80, 120),
		line("Soda", 85, 100, 140, 120),
		line("Cake", 145, 100, 195, 120),
	}
	cols := SplitRowIntoColumns(row, 200)
	if len(cols) != 3 {
		t.Fatalf("expected 3 fallback columns got %d", len(cols))
	}
	if len(cols[0]) != 1 || len(cols[1]) != 1 || len(cols[2]) != 1 {
		t.Fatalf("expected one line per band got %d %d %d", len(cols[0]), len(cols[1]), len(cols[2]))
	}
}

func TestSplitRowIntoColumnsSkipsEmptyLines(t *testing.T) {
	row := []Line{
		line("  ", 60, 100, 80, 120),
		line("", 480, 102, 500, 122),
	}
	if cols := SplitRowIntoColumns(row, 1000); cols != nil {
		t.Fatalf("expected nil for whitespace-only row got %v", cols)
	}
}
