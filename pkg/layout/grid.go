package layout

import (
	"strconv"
	"strings"

	"slate/pkg/markup"
)

// gridPlacement pins one child to a rectangle of cells. Row and column
// indices are zero-based with exclusive ends.
type gridPlacement struct {
	el       *markup.Element
	rowStart int
	rowEnd   int
	colStart int
	colEnd   int
}

// gridAreaBounds is the cell rectangle covered by one named area in
// grid-template-areas.
type gridAreaBounds struct {
	rowStart int
	rowEnd   int
	colStart int
	colEnd   int
}

// layoutGridChildren resolves the track lists, places children into cells
// (named areas first, then row-major auto-placement), and recurses into
// each child with its cell rectangle. Children that do not fit in the
// explicit grid stack block-style below it. Without usable tracks the
// container degrades to block layout.
func (e *Engine) layoutGridChildren(el *markup.Element) {
	box := el.Box
	st := el.ComputedStyle
	contentX := box.ContentLeft()
	contentY := box.ContentTop()
	availW := box.ContentWidth()
	availH := box.ContentHeight()

	children := e.flowChildren(el, contentX, contentY, availW, availH)
	if len(children) == 0 {
		return
	}

	areas := parseGridAreas(st.GetOr("grid-template-areas", ""))
	colTracks := parseTrackList(st.GetOr("grid-template-columns", ""))
	rowTracks := parseTrackList(st.GetOr("grid-template-rows", ""))

	// Named areas fix the grid dimensions; pad short track lists with 1fr.
	if len(areas) > 0 {
		for len(colTracks) < len(areas[0]) {
			colTracks = append(colTracks, "1fr")
		}
		for len(rowTracks) < len(areas) {
			rowTracks = append(rowTracks, "1fr")
		}
	}

	if (len(colTracks) == 0 && len(rowTracks) == 0) || availW <= 0 || availH <= 0 {
		e.layoutBlockChildren(el)
		return
	}
	if len(colTracks) == 0 {
		colTracks = []string{"1fr"}
	}
	if len(rowTracks) == 0 {
		needed := (len(children) + len(colTracks) - 1) / len(colTracks)
		for i := 0; i < needed; i++ {
			rowTracks = append(rowTracks, "1fr")
		}
	}

	rowGapStr, columnGapStr := st.Gaps()
	rowGap := e.lengths.Resolve(rowGapStr, availH)
	colGap := e.lengths.Resolve(columnGapStr, availW)

	colSizes := e.resolveTracks(colTracks, availW, colGap)
	rowSizes := e.resolveTracks(rowTracks, availH, rowGap)
	nCols := len(colSizes)
	nRows := len(rowSizes)

	bounds := buildAreaBounds(areas)

	used := make([][]bool, nRows)
	for r := range used {
		used[r] = make([]bool, nCols)
	}

	placements := make([]gridPlacement, 0, len(children))
	var unplaced []*markup.Element

	for _, child := range children {
		name := child.ComputedStyle.GetOr("grid-area", "")
		if name == "" || name == "auto" {
			unplaced = append(unplaced, child)
			continue
		}
		b, ok := bounds[name]
		if !ok {
			unplaced = append(unplaced, child)
			continue
		}
		p := gridPlacement{
			el:       child,
			rowStart: b.rowStart,
			rowEnd:   min(b.rowEnd, nRows),
			colStart: b.colStart,
			colEnd:   min(b.colEnd, nCols),
		}
		markUsed(used, p)
		placements = append(placements, p)
	}

	var overflow []*markup.Element
	for _, child := range unplaced {
		p, ok := nextFreeCell(used, child)
		if !ok {
			overflow = append(overflow, child)
			continue
		}
		markUsed(used, p)
		placements = append(placements, p)
	}

	for _, p := range placements {
		x := contentX + trackOffset(colSizes, colGap, p.colStart)
		y := contentY + trackOffset(rowSizes, rowGap, p.rowStart)
		w := spanSize(colSizes, colGap, p.colStart, p.colEnd)
		h := spanSize(rowSizes, rowGap, p.rowStart, p.rowEnd)

		e.layoutElement(p.el, w, h, false, x, y)

		p.el.Box.GridColumnStart = p.colStart
		p.el.Box.GridColumnEnd = p.colEnd
		p.el.Box.GridRowStart = p.rowStart
		p.el.Box.GridRowEnd = p.rowEnd
	}

	if len(overflow) > 0 {
		currentY := contentY + spanSize(rowSizes, rowGap, 0, nRows) + rowGap
		for _, child := range overflow {
			e.layoutElement(child, availW, availH, false, contentX, currentY)
			currentY += child.Box.OuterHeight()
		}
	}
}

// resolveTracks turns a track list into pixel sizes. Fixed tracks resolve
// first, fr tracks then share the leftover proportionally, and auto tracks
// split whatever the fr pass leaves untouched.
func (e *Engine) resolveTracks(tracks []string, container, gap float64) []float64 {
	sizes := make([]float64, len(tracks))
	if len(tracks) == 0 {
		return sizes
	}

	space := container - gap*float64(len(tracks)-1)
	if space < 0 {
		space = 0
	}

	frs := make([]float64, len(tracks))
	var frTotal, fixed float64
	var autoIdx []int

	for i, t := range tracks {
		switch {
		case strings.HasSuffix(t, "fr"):
			fr, err := strconv.ParseFloat(strings.TrimSuffix(t, "fr"), 64)
			if err != nil || fr < 0 {
				fr = 0
			}
			frs[i] = fr
			frTotal += fr
		case t == "auto":
			autoIdx = append(autoIdx, i)
		default:
			sizes[i] = e.lengths.Resolve(t, container)
			fixed += sizes[i]
		}
	}

	remaining := space - fixed
	if remaining < 0 {
		remaining = 0
	}
	if frTotal > 0 {
		for i, fr := range frs {
			if fr > 0 {
				sizes[i] = remaining * fr / frTotal
			}
		}
		remaining = 0
	}
	if len(autoIdx) > 0 && remaining > 0 {
		per := remaining / float64(len(autoIdx))
		for _, i := range autoIdx {
			sizes[i] = per
		}
	}

	for i := range sizes {
		if sizes[i] < 0 {
			sizes[i] = 0
		}
	}
	return sizes
}

// parseTrackList splits a grid-template value into individual tracks,
// expanding repeat() in place. Splitting is paren-depth aware so function
// arguments never break a track apart.
func parseTrackList(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "none" || spec == "auto" {
		return nil
	}

	var out []string
	for _, part := range splitTracks(spec) {
		if strings.HasPrefix(part, "repeat(") && strings.HasSuffix(part, ")") {
			out = append(out, expandRepeat(part)...)
			continue
		}
		out = append(out, part)
	}
	return out
}

// splitTracks splits on whitespace at paren depth zero.
func splitTracks(spec string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for _, r := range spec {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// expandRepeat unrolls repeat(count, tracks). auto-fill and auto-fit have
// no content-sizing pass here, so they unroll to three copies. Counts are
// capped at 100 tracks worth of expansion.
func expandRepeat(part string) []string {
	inner := part[len("repeat(") : len(part)-1]

	comma := -1
	depth := 0
	for i, r := range inner {
		if r == '(' {
			depth++
		} else if r == ')' {
			depth--
		} else if r == ',' && depth == 0 {
			comma = i
			break
		}
	}
	if comma < 0 {
		return nil
	}

	countStr := strings.TrimSpace(inner[:comma])
	list := splitTracks(strings.TrimSpace(inner[comma+1:]))
	if len(list) == 0 {
		return nil
	}

	n := 0
	switch countStr {
	case "auto-fill", "auto-fit":
		n = 3
	default:
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed <= 0 {
			return list
		}
		n = parsed
		if n > 100 {
			n = 100
		}
	}

	out := make([]string, 0, n*len(list))
	for i := 0; i < n; i++ {
		out = append(out, list...)
	}
	return out
}

// parseGridAreas extracts the quoted row strings of grid-template-areas
// and splits each into cell names.
func parseGridAreas(spec string) [][]string {
	var rows [][]string
	var inQuote bool
	var quote rune
	var current strings.Builder

	for _, r := range spec {
		switch {
		case inQuote && r == quote:
			inQuote = false
			cells := strings.Fields(current.String())
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			current.Reset()
		case inQuote:
			current.WriteRune(r)
		case r == '"' || r == '\'':
			inQuote = true
			quote = r
		}
	}
	return rows
}

// buildAreaBounds computes the covering rectangle of every named cell.
// Dots are anonymous filler. Non-rectangular areas collapse to their
// bounding rectangle.
func buildAreaBounds(areas [][]string) map[string]gridAreaBounds {
	bounds := make(map[string]gridAreaBounds)
	for r, row := range areas {
		for c, name := range row {
			if name == "." {
				continue
			}
			b, ok := bounds[name]
			if !ok {
				bounds[name] = gridAreaBounds{rowStart: r, rowEnd: r + 1, colStart: c, colEnd: c + 1}
				continue
			}
			if r < b.rowStart {
				b.rowStart = r
			}
			if r+1 > b.rowEnd {
				b.rowEnd = r + 1
			}
			if c < b.colStart {
				b.colStart = c
			}
			if c+1 > b.colEnd {
				b.colEnd = c + 1
			}
			bounds[name] = b
		}
	}
	return bounds
}

// nextFreeCell finds the first unused cell in row-major order.
func nextFreeCell(used [][]bool, el *markup.Element) (gridPlacement, bool) {
	for r := range used {
		for c := range used[r] {
			if !used[r][c] {
				return gridPlacement{el: el, rowStart: r, rowEnd: r + 1, colStart: c, colEnd: c + 1}, true
			}
		}
	}
	return gridPlacement{}, false
}

func markUsed(used [][]bool, p gridPlacement) {
	for r := p.rowStart; r < p.rowEnd && r < len(used); r++ {
		for c := p.colStart; c < p.colEnd && c < len(used[r]); c++ {
			used[r][c] = true
		}
	}
}

// trackOffset is the pixel offset of track i from the content edge.
func trackOffset(sizes []float64, gap float64, i int) float64 {
	offset := 0.0
	for t := 0; t < i && t < len(sizes); t++ {
		offset += sizes[t]
	}
	return offset + gap*float64(i)
}

// spanSize is the pixel extent of tracks [start, end) including the
// interior gaps.
func spanSize(sizes []float64, gap float64, start, end int) float64 {
	if end > len(sizes) {
		end = len(sizes)
	}
	if end <= start {
		return 0
	}
	total := 0.0
	for i := start; i < end; i++ {
		total += sizes[i]
	}
	return total + gap*float64(end-start-1)
}
