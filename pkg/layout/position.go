package layout

import (
	"slate/pkg/markup"
	"slate/pkg/style"
)

// applyPosition sets the box origin from its position type. x/y is the
// normal-flow slot chosen by the parent's flow algorithm; containerW/H is
// the containing block (the parent's content box, or the viewport for
// fixed). Called after sizing, before children are laid out, so children
// inherit final coordinates.
func (e *Engine) applyPosition(box *markup.LayoutBox, containerW, containerH, x, y float64) {
	switch box.Position {
	case style.PositionAbsolute:
		e.placeAgainstBlock(box, x, y, containerW, containerH)
	case style.PositionFixed:
		e.placeAgainstBlock(box, 0, 0, e.viewport.Width, e.viewport.Height)
	case style.PositionRelative, style.PositionSticky:
		// Sticky collapses to relative: scroll-based sticking is a
		// renderer concern this engine does not model.
		box.X = x + box.MarginLeft
		box.Y = y + box.MarginTop
		applyRelativeOffsets(box)
	default:
		box.X = x + box.MarginLeft
		box.Y = y + box.MarginTop
	}
}

// placeAgainstBlock positions an out-of-flow box inside the containing
// block at (cbX, cbY) with size cbW x cbH. An explicit left beats right;
// with only right given the box hugs the block's right edge. Vertical axis
// follows the same pattern with top and bottom. Neither offset given means
// the box sits at the block's flow origin.
func (e *Engine) placeAgainstBlock(box *markup.LayoutBox, cbX, cbY, cbW, cbH float64) {
	switch {
	case box.Left != nil:
		box.X = cbX + *box.Left
	case box.Right != nil:
		box.X = cbX + cbW - *box.Right - box.Width
	default:
		box.X = cbX + box.MarginLeft
	}

	switch {
	case box.Top != nil:
		box.Y = cbY + *box.Top
	case box.Bottom != nil:
		box.Y = cbY + cbH - *box.Bottom - box.Height
	default:
		box.Y = cbY + box.MarginTop
	}
}

// applyRelativeOffsets nudges a relatively positioned box from its
// normal-flow spot without removing it from flow. Left wins over right and
// top over bottom when both are present.
func applyRelativeOffsets(box *markup.LayoutBox) {
	switch {
	case box.Left != nil:
		box.X += *box.Left
	case box.Right != nil:
		box.X -= *box.Right
	}
	switch {
	case box.Top != nil:
		box.Y += *box.Top
	case box.Bottom != nil:
		box.Y -= *box.Bottom
	}
}
