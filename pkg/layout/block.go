package layout

import (
	"slate/pkg/markup"
)

// layoutBlockChildren stacks in-flow children vertically in source order.
// Each child sizes against the height still unclaimed by earlier siblings
// (the remaining budget only shrinks what later auto-sized children may
// claim; a child is never compressed below its own computed height), and
// the cursor advances by the child's full margin footprint so consecutive
// siblings can never overlap.
func (e *Engine) layoutBlockChildren(el *markup.Element) {
	box := el.Box
	contentX := box.ContentLeft()
	contentY := box.ContentTop()
	availW := box.ContentWidth()
	availH := box.ContentHeight()

	children := e.flowChildren(el, contentX, contentY, availW, availH)

	currentY := contentY
	for _, child := range children {
		consumed := currentY - contentY
		remainingH := availH - consumed
		if remainingH < 0 {
			remainingH = 0
		}

		e.layoutElement(child, availW, remainingH, false, contentX, currentY)
		currentY += child.Box.OuterHeight()
	}
}
