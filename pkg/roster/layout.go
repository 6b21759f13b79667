package roster

import (
	"sort"
	"strings"
)

// GroupLinesIntoRows clusters lines into rows by vertical proximity. The
// cluster threshold adapts to the screenshot's font size via the median line
// height, rather than a fixed pixel distance.
func GroupLinesIntoRows(lines []Line) []Row {
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].BBox.Y0 < sorted[b].BBox.Y0 })

	heights := make([]int, 0, len(sorted))
	for _, l := range sorted {
		if h := l.BBox.Y1 - l.BBox.Y0; h > 0 {
			heights = append(heights, h)
		}
	}
	sort.Ints(heights)
	medianHeight := 0
	if len(heights) > 0 {
		medianHeight = heights[len(heights)/2]
	}
	threshold := int(float64(medianHeight)*1.6 + 0.5)
	if threshold < 26 {
		threshold = 26
	}

	var rows []Row
	for _, line := range sorted {
		if len(rows) > 0 {
			last := &rows[len(rows)-1]
			if abs(line.BBox.Y0-last.Y0) <= threshold {
				last.Lines = append(last.Lines, line)
				continue
			}
		}
		rows = append(rows, Row{Y0: line.BBox.Y0, Lines: []Line{line}})
	}
	return rows
}

// columnForLine is the fixed fractional fallback when no gap structure is
// detectable: x < 0.42w left, x < 0.72w middle, else right.
func columnForLine(line Line, inferredWidth int) int {
	w := inferredWidth
	if w < 1 {
		w = 1
	}
	x := float64(line.BBox.X0)
	switch {
	case x < float64(w)*0.42:
		return 0
	case x < float64(w)*0.72:
		return 1
	default:
		return 2
	}
}

// SplitRowIntoColumns partitions a row's lines into 1-3 horizontal bands.
// Column boundaries are detected from large gaps between consecutive x0
// positions; when the row is too tightly packed to show gaps, the fixed
// fractional bands take over.
func SplitRowIntoColumns(rowLines []Line, inferredWidth int) [][]Line {
	lines := make([]Line, 0, len(rowLines))
	for _, l := range rowLines {
		if strings.TrimSpace(l.Text) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	sort.SliceStable(lines, func(a, b int) bool { return lines[a].BBox.X0 < lines[b].BBox.X0 })

	xs := make([]int, len(lines))
	for i, l := range lines {
		xs[i] = l.BBox.X0
	}

	type gap struct {
		idx int
		gap int
	}
	var gaps []gap
	for i := 1; i < len(xs); i++ {
		gaps = append(gaps, gap{idx: i, gap: xs[i] - xs[i-1]})
	}

	gapThreshold := int(float64(inferredWidth) * 0.12)
	if gapThreshold < 70 {
		gapThreshold = 70
	}
	var big []gap
	for _, g := range gaps {
		if g.gap >= gapThreshold {
			big = append(big, g)
		}
	}
	sort.SliceStable(big, func(a, b int) bool { return big[a].gap > big[b].gap })

	if len(big) >= 2 {
		// Two largest gaps, ordered by position, split the row in three.
		i1, i2 := big[0].idx, big[1].idx
		if i1 > i2 {
			i1, i2 = i2, i1
		}
		split1 := float64(xs[i1-1]+xs[i1]) / 2
		split2 := float64(xs[i2-1]+xs[i2]) / 2
		var c1, c2, c3 []Line
		for _, l := range lines {
			switch {
			case float64(l.BBox.X0) < split1:
				c1 = append(c1, l)
			case float64(l.BBox.X0) < split2:
				c2 = append(c2, l)
			default:
				c3 = append(c3, l)
			}
		}
		return [][]Line{c1, c2, c3}
	}

	if len(big) == 1 {
		split := float64(xs[big[0].idx-1]+xs[big[0].idx]) / 2
		var left, right []Line
		for _, l := range lines {
			if float64(l.BBox.X0) < split {
				left = append(left, l)
			} else {
				right = append(right, l)
			}
		}
		return [][]Line{left, right}
	}

	cols := make([][]Line, 3)
	for _, l := range lines {
		c := columnForLine(l, inferredWidth)
		cols[c] = append(cols[c], l)
	}
	return cols
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
