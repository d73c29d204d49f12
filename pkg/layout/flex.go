package layout

import (
	"sort"

	"slate/pkg/markup"
	"slate/pkg/style"
)

// flexItem tracks one in-flow child through the flex pipeline. main/cross
// are sizes along the container's main and cross axes; mainPos/crossPos are
// absolute coordinates once placement has run.
type flexItem struct {
	el        *markup.Element
	order     int
	grow      float64
	shrink    float64
	base      float64
	main      float64
	cross     float64
	alignSelf style.AlignItems
	mainPos   float64
	crossPos  float64
}

// flexLine is one row (or column) of items when wrapping. Lines are built
// during packing, consumed during placement, and discarded.
type flexLine struct {
	items      []*flexItem
	crossSize  float64
	crossStart float64
}

// layoutFlexChildren implements the flex pipeline: sort by order, compute
// base main sizes, pack into lines, distribute free space per line, place
// lines per align-content, place items per justify-content and
// align-items/align-self, then recurse into each child with its final rect.
// Column direction is the row algorithm with the axes transposed.
func (e *Engine) layoutFlexChildren(el *markup.Element) {
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

	dir := st.GetFlexDirection()
	isRow := dir == style.FlexDirectionRow || dir == style.FlexDirectionRowReverse
	isReverse := dir == style.FlexDirectionRowReverse || dir == style.FlexDirectionColumnReverse
	wrap := st.GetFlexWrap()
	justify := st.GetJustifyContent()
	alignItems := st.GetAlignItems()
	alignContent := st.GetAlignContent()

	rowGapStr, columnGapStr := st.Gaps()
	rowGap := e.lengths.Resolve(rowGapStr, availH)
	columnGap := e.lengths.Resolve(columnGapStr, availW)

	var mainSize, crossSize, mainGap, crossGap, mainBase, crossBase float64
	if isRow {
		mainSize, crossSize = availW, availH
		mainGap, crossGap = columnGap, rowGap
		mainBase, crossBase = contentX, contentY
	} else {
		mainSize, crossSize = availH, availW
		mainGap, crossGap = rowGap, columnGap
		mainBase, crossBase = contentY, contentX
	}

	items := make([]*flexItem, 0, len(children))
	for _, child := range children {
		cs := child.ComputedStyle
		grow, shrink, basis := cs.Flex()
		it := &flexItem{
			el:     child,
			order:  cs.GetInt("order", 0),
			grow:   grow,
			shrink: shrink,
		}
		it.base = e.flexBaseSize(child, basis, grow, isRow, mainSize)
		it.main = it.base
		it.cross = e.flexCrossEstimate(child, isRow, crossSize)
		if self, ok := cs.GetAlignSelf(); ok {
			it.alignSelf = self
		} else {
			it.alignSelf = alignItems
		}
		items = append(items, it)
	}

	// Stable: items with equal order keep source order.
	sort.SliceStable(items, func(i, j int) bool { return items[i].order < items[j].order })

	lines := packFlexLines(items, mainSize, mainGap, wrap != style.FlexWrapNowrap)
	if wrap == style.FlexWrapWrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	for _, line := range lines {
		distributeMainSpace(line.items, mainSize, mainGap)
		for _, it := range line.items {
			if it.cross > line.crossSize {
				line.crossSize = it.cross
			}
		}
	}

	positionFlexLines(lines, alignContent, crossGap, crossBase, crossSize)

	for _, line := range lines {
		lineItems := line.items
		if isReverse {
			lineItems = make([]*flexItem, len(line.items))
			for i, it := range line.items {
				lineItems[len(line.items)-1-i] = it
			}
		}
		placeAlongMainAxis(lineItems, justify, mainGap, mainBase, mainSize)

		for _, it := range lineItems {
			switch it.alignSelf {
			case style.AlignItemsFlexStart:
				it.crossPos = line.crossStart
			case style.AlignItemsFlexEnd:
				it.crossPos = line.crossStart + line.crossSize - it.cross
			case style.AlignItemsCenter:
				it.crossPos = line.crossStart + (line.crossSize-it.cross)/2
			default: // stretch fills the line, overwriting the cross size
				it.crossPos = line.crossStart
				it.cross = line.crossSize
			}
		}
	}

	for _, line := range lines {
		for _, it := range line.items {
			var childW, childH, x, y float64
			if isRow {
				childW, childH = it.main, it.cross
				x, y = it.mainPos, it.crossPos
			} else {
				childW, childH = it.cross, it.main
				x, y = it.crossPos, it.mainPos
			}
			e.layoutElement(it.el, childW, childH, false, x, y)
		}
	}
}

// flexBaseSize resolves an item's base main size: flex-basis when it parses
// (including an exact 0 for "0"/"0%"), then an explicit main-axis dimension,
// then a content estimate. Items that will grow start from 0 so grow
// distribution supplies the whole size.
func (e *Engine) flexBaseSize(child *markup.Element, basis string, grow float64, isRow bool, mainSize float64) float64 {
	if b := e.resolveFlexBasis(basis, mainSize); b != nil {
		return *b
	}

	cs := child.ComputedStyle
	mainProp := "height"
	if isRow {
		mainProp = "width"
	}
	if v, ok := cs.Get(mainProp); ok && v != "auto" {
		return e.lengths.Resolve(v, mainSize)
	}

	if isRow && child.Tag == "button" && child.HasText() {
		return e.sizer.EstimateWidth(child, mainSize)
	}
	if grow > 0 {
		return 0
	}
	if isRow {
		return 100
	}
	return e.sizer.EstimateHeight(child, mainSize)
}

// flexCrossEstimate guesses the item's cross size for line sizing. Stretch
// items get overwritten later; the estimate only has to rank lines.
func (e *Engine) flexCrossEstimate(child *markup.Element, isRow bool, crossSize float64) float64 {
	cs := child.ComputedStyle
	crossProp := "width"
	if isRow {
		crossProp = "height"
	}
	if v, ok := cs.Get(crossProp); ok && v != "auto" {
		return e.lengths.Resolve(v, crossSize)
	}
	if isRow {
		return e.sizer.EstimateHeight(child, crossSize)
	}
	return e.sizer.EstimateWidth(child, crossSize)
}

// packFlexLines splits items into lines greedily: a line closes when adding
// the next item (plus gap) would overflow the main size and the line is not
// empty. Without wrapping everything lands on one line.
func packFlexLines(items []*flexItem, mainSize, gap float64, wrapping bool) []*flexLine {
	if !wrapping {
		return []*flexLine{{items: items}}
	}

	lines := make([]*flexLine, 0, 1)
	current := &flexLine{}
	currentMain := 0.0

	for _, it := range items {
		needed := it.base
		if len(current.items) > 0 {
			needed += gap
		}
		if len(current.items) > 0 && currentMain+needed > mainSize {
			lines = append(lines, current)
			current = &flexLine{items: []*flexItem{it}}
			currentMain = it.base
			continue
		}
		current.items = append(current.items, it)
		currentMain += needed
	}
	if len(current.items) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// distributeMainSpace applies grow/shrink within one line. Positive free
// space is shared in proportion to flex-grow; negative space is removed in
// proportion to flex-shrink weighted by base size, floored at zero. When
// the relevant factor sums to zero the items simply keep their base sizes.
func distributeMainSpace(items []*flexItem, mainSize, gap float64) {
	if len(items) == 0 {
		return
	}

	used := 0.0
	totalGrow := 0.0
	scaledShrink := 0.0
	for _, it := range items {
		used += it.base
		totalGrow += it.grow
		scaledShrink += it.shrink * it.base
	}
	free := mainSize - used - gap*float64(len(items)-1)

	switch {
	case free > 0 && totalGrow > 0:
		for _, it := range items {
			it.main = it.base + free*it.grow/totalGrow
		}
	case free < 0 && scaledShrink > 0:
		for _, it := range items {
			it.main = it.base + free*(it.shrink*it.base)/scaledShrink
			if it.main < 0 {
				it.main = 0
			}
		}
	}
}

// positionFlexLines assigns each line's cross-axis start per align-content.
// The spacing math mirrors justify-content, transposed to the cross axis;
// stretch grows every line by an equal share of the leftover space.
func positionFlexLines(lines []*flexLine, align style.AlignContent, crossGap, crossBase, crossSize float64) {
	if len(lines) == 0 {
		return
	}

	total := 0.0
	for _, line := range lines {
		total += line.crossSize
	}
	free := crossSize - total - crossGap*float64(len(lines)-1)

	current := crossBase
	spacing := crossGap
	n := float64(len(lines))

	switch align {
	case style.AlignContentFlexEnd:
		current += free
	case style.AlignContentCenter:
		current += free / 2
	case style.AlignContentSpaceBetween:
		if len(lines) > 1 {
			spacing += free / (n - 1)
		}
	case style.AlignContentSpaceAround:
		per := free / n
		current += per / 2
		spacing += per
	case style.AlignContentSpaceEvenly:
		per := free / (n + 1)
		current += per
		spacing += per
	case style.AlignContentFlexStart:
	default: // stretch
		if free > 0 {
			extra := free / n
			for _, line := range lines {
				line.crossSize += extra
			}
		}
	}

	for _, line := range lines {
		line.crossStart = current
		current += line.crossSize + spacing
	}
}

// placeAlongMainAxis assigns main-axis positions within one line per
// justify-content. space-between splits leftover into n-1 interior gaps,
// space-around gives every item half a gap on each side, space-evenly uses
// n+1 equal gaps including both ends.
func placeAlongMainAxis(items []*flexItem, justify style.JustifyContent, gap, mainBase, mainSize float64) {
	if len(items) == 0 {
		return
	}

	total := 0.0
	for _, it := range items {
		total += it.main
	}
	free := mainSize - total - gap*float64(len(items)-1)

	current := mainBase
	spacing := gap
	n := float64(len(items))

	switch justify {
	case style.JustifyFlexEnd:
		current += free
	case style.JustifyCenter:
		current += free / 2
	case style.JustifySpaceBetween:
		if len(items) > 1 {
			spacing += free / (n - 1)
		}
	case style.JustifySpaceAround:
		per := free / n
		current += per / 2
		spacing += per
	case style.JustifySpaceEvenly:
		per := free / (n + 1)
		current += per
		spacing += per
	}

	for _, it := range items {
		it.mainPos = current
		current += it.main + spacing
	}
}
