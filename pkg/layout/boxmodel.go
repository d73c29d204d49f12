package layout

import (
	"strconv"
	"strings"

	"slate/pkg/markup"
	"slate/pkg/style"
)

// resolveBoxModel fills a fresh LayoutBox with edges, dimensions,
// constraints, and the flex/grid participation fields. Position (X/Y) is
// the caller's job. Shorthand properties resolve first and any longhand
// present overwrites them, mirroring cascade order without modeling it.
func (e *Engine) resolveBoxModel(el *markup.Element, containerW, containerH float64, isRoot bool) *markup.LayoutBox {
	st := el.ComputedStyle
	box := &markup.LayoutBox{}

	e.resolveEdges(st, box, containerW)
	box.BorderWidth = e.lengths.Resolve(st.GetOr("border-width", "0"), containerW)

	box.Position = st.GetPosition()
	left, hasLeft := st.Get("left")
	right, hasRight := st.Get("right")
	top, hasTop := st.Get("top")
	bottom, hasBottom := st.Get("bottom")
	box.Left = e.lengths.ResolveOptional(left, hasLeft, containerW)
	box.Right = e.lengths.ResolveOptional(right, hasRight, containerW)
	box.Top = e.lengths.ResolveOptional(top, hasTop, containerH)
	box.Bottom = e.lengths.ResolveOptional(bottom, hasBottom, containerH)

	minW, hasMinW := st.Get("min-width")
	maxW, hasMaxW := st.Get("max-width")
	minH, hasMinH := st.Get("min-height")
	maxH, hasMaxH := st.Get("max-height")
	box.MinWidth = e.lengths.ResolveOptional(minW, hasMinW, containerW)
	box.MaxWidth = e.lengths.ResolveOptional(maxW, hasMaxW, containerW)
	box.MinHeight = e.lengths.ResolveOptional(minH, hasMinH, containerH)
	box.MaxHeight = e.lengths.ResolveOptional(maxH, hasMaxH, containerH)

	grow, shrink, basis := st.Flex()
	box.FlexGrow = grow
	box.FlexShrink = shrink
	box.FlexBasis = e.resolveFlexBasis(basis, containerW)
	box.Order = st.GetInt("order", 0)

	if area := st.GetOr("grid-area", "auto"); area != "auto" {
		box.GridArea = area
	}

	if isRoot {
		e.resolveRootDimensions(st, box, containerW, containerH)
	} else {
		e.resolveWidth(el, st, box, containerW)
		e.resolveHeight(el, st, box, containerH)
	}

	clampDimensions(box)
	return box
}

func (e *Engine) resolveEdges(st *style.Style, box *markup.LayoutBox, containerW float64) {
	if margin, ok := st.Get("margin"); ok {
		box.MarginTop, box.MarginRight, box.MarginBottom, box.MarginLeft =
			e.lengths.ExpandShorthand(margin, containerW)
	}
	overwrite := func(property string, dst *float64) {
		if val, ok := st.Get(property); ok {
			*dst = e.lengths.Resolve(val, containerW)
		}
	}
	overwrite("margin-top", &box.MarginTop)
	overwrite("margin-right", &box.MarginRight)
	overwrite("margin-bottom", &box.MarginBottom)
	overwrite("margin-left", &box.MarginLeft)

	if padding, ok := st.Get("padding"); ok {
		box.PaddingTop, box.PaddingRight, box.PaddingBottom, box.PaddingLeft =
			e.lengths.ExpandShorthand(padding, containerW)
	}
	overwrite("padding-top", &box.PaddingTop)
	overwrite("padding-right", &box.PaddingRight)
	overwrite("padding-bottom", &box.PaddingBottom)
	overwrite("padding-left", &box.PaddingLeft)
}

// resolveFlexBasis resolves a flex-basis string to px. "0" and "0%" must
// resolve to an exact zero basis rather than falling through to auto;
// treating the string "0" as absent is the bug class this guards against.
func (e *Engine) resolveFlexBasis(basis string, reference float64) *float64 {
	basis = strings.TrimSpace(basis)
	if basis == "" || basis == "auto" {
		return nil
	}
	if basis == "0" || basis == "0%" {
		zero := 0.0
		return &zero
	}
	if strings.HasSuffix(basis, "px") || strings.HasSuffix(basis, "%") {
		v := e.lengths.Resolve(basis, reference)
		return &v
	}
	if f, err := strconv.ParseFloat(basis, 64); err == nil {
		return &f
	}
	return nil
}

// resolveRootDimensions makes the root exactly fill the viewport unless
// explicit dimensions override it.
func (e *Engine) resolveRootDimensions(st *style.Style, box *markup.LayoutBox, containerW, containerH float64) {
	if w, ok := st.Get("width"); ok && w != "auto" {
		box.Width = e.lengths.Resolve(w, containerW)
	} else {
		box.Width = containerW
	}
	if h, ok := st.Get("height"); ok && h != "auto" {
		box.Height = e.lengths.Resolve(h, containerH)
	} else {
		box.Height = containerH
	}
}

func (e *Engine) resolveWidth(el *markup.Element, st *style.Style, box *markup.LayoutBox, containerW float64) {
	outOfFlow := box.Position == style.PositionAbsolute || box.Position == style.PositionFixed

	// In-flow flex children on a horizontal main axis take the main size
	// the parent's flex pass distributed through containerW, even when an
	// explicit width is declared: the declaration already served as the
	// item's base size, and grow/shrink must land on the final box.
	if dir, isFlexChild := flexParentDirection(el); isFlexChild && !outOfFlow {
		if dir == style.FlexDirectionRow || dir == style.FlexDirectionRowReverse {
			box.Width = containerW
			if box.Width < 0 {
				box.Width = 0
			}
			return
		}
	}

	if w, ok := st.Get("width"); ok && w != "auto" {
		box.Width = e.lengths.Resolve(w, containerW)
		return
	}

	// Grid children receive their cell width through containerW.
	if hasGridParent(el) && !outOfFlow {
		box.Width = containerW
		if box.Width < 0 {
			box.Width = 0
		}
		return
	}

	// Column flex: auto width fills the cross axis.
	if _, isFlexChild := flexParentDirection(el); isFlexChild && !outOfFlow {
		box.Width = containerW - box.MarginLeft - box.MarginRight
		if box.Width < 0 {
			box.Width = 0
		}
		return
	}

	available := containerW - box.MarginLeft - box.MarginRight
	if available < 0 {
		available = 0
	}

	switch st.GetDisplay(el.Tag) {
	case style.DisplayInline, style.DisplayInlineBlock:
		box.Width = e.sizer.EstimateWidth(el, available)
	default:
		box.Width = available
	}
}

func (e *Engine) resolveHeight(el *markup.Element, st *style.Style, box *markup.LayoutBox, containerH float64) {
	outOfFlow := box.Position == style.PositionAbsolute || box.Position == style.PositionFixed

	// Vertical main axis: the distributed flex size beats a declared
	// height, mirroring resolveWidth.
	if dir, isFlexChild := flexParentDirection(el); isFlexChild && !outOfFlow {
		if dir == style.FlexDirectionColumn || dir == style.FlexDirectionColumnReverse {
			box.Height = containerH
			if box.Height < 0 {
				box.Height = 0
			}
			return
		}
	}

	if h, ok := st.Get("height"); ok && h != "auto" {
		box.Height = e.lengths.Resolve(h, containerH)
		return
	}

	// Grid children fill their cell height.
	if hasGridParent(el) && !outOfFlow {
		box.Height = containerH
		if box.Height < 0 {
			box.Height = 0
		}
		return
	}

	// Row flex: cross axis fills the line the parent allotted.
	if _, isFlexChild := flexParentDirection(el); isFlexChild && !outOfFlow {
		box.Height = containerH - box.MarginTop - box.MarginBottom
		if box.Height < 0 {
			box.Height = 0
		}
		return
	}

	box.Height = e.sizer.EstimateHeight(el, containerH)
}

// flexParentDirection reports whether el's parent is a flex container and,
// if so, its main axis direction. This is the one place the parent
// back-pointer influences sizing.
// hasGridParent reports whether el's parent is a grid container, in which
// case both auto dimensions come from the assigned cell.
func hasGridParent(el *markup.Element) bool {
	parent := el.Parent
	if parent == nil || parent.ComputedStyle == nil {
		return false
	}
	return parent.ComputedStyle.GetDisplay(parent.Tag) == style.DisplayGrid
}

func flexParentDirection(el *markup.Element) (style.FlexDirection, bool) {
	parent := el.Parent
	if parent == nil || parent.ComputedStyle == nil {
		return "", false
	}
	if parent.ComputedStyle.GetDisplay(parent.Tag) != style.DisplayFlex {
		return "", false
	}
	return parent.ComputedStyle.GetFlexDirection(), true
}

// clampDimensions applies min/max constraints and floors both dimensions at
// zero. Min wins over max when they conflict.
func clampDimensions(box *markup.LayoutBox) {
	if box.MaxWidth != nil && box.Width > *box.MaxWidth {
		box.Width = *box.MaxWidth
	}
	if box.MinWidth != nil && box.Width < *box.MinWidth {
		box.Width = *box.MinWidth
	}
	if box.MaxHeight != nil && box.Height > *box.MaxHeight {
		box.Height = *box.MaxHeight
	}
	if box.MinHeight != nil && box.Height < *box.MinHeight {
		box.Height = *box.MinHeight
	}
	if box.Width < 0 {
		box.Width = 0
	}
	if box.Height < 0 {
		box.Height = 0
	}
}
