package layout

import (
	"slate/pkg/markup"
	"slate/pkg/style"
)

// layoutInlineChildren packs children left to right with greedy wrapping.
// A child wraps only when it does not fit AND the line already holds an
// item, so an oversized child still lands at a line start instead of
// looping. Block-display children inside the inline context force a line
// break before and after themselves. A wrapped child is laid out a second
// time at its final slot; boxes are rebuilt fresh each time, so the retry
// does not accumulate state.
func (e *Engine) layoutInlineChildren(el *markup.Element) {
	box := el.Box
	contentX := box.ContentLeft()
	contentY := box.ContentTop()
	availW := box.ContentWidth()
	availH := box.ContentHeight()

	children := e.flowChildren(el, contentX, contentY, availW, availH)

	currentX := contentX
	currentY := contentY
	lineHeight := 0.0

	for _, child := range children {
		switch child.ComputedStyle.GetDisplay(child.Tag) {
		case style.DisplayInline, style.DisplayInlineBlock:
		default:
			// Block-level child: break the current line, give the child
			// the full width, and start a new line after it.
			if currentX > contentX {
				currentX = contentX
				currentY += lineHeight
				lineHeight = 0
			}
			e.layoutElement(child, availW, availH, false, contentX, currentY)
			currentY += child.Box.OuterHeight()
			continue
		}

		used := currentX - contentX
		remaining := availW - used
		if remaining < 0 {
			remaining = 0
		}

		e.layoutElement(child, remaining, availH, false, currentX, currentY)

		total := child.Box.OuterWidth()
		if total > remaining && currentX > contentX {
			currentX = contentX
			currentY += lineHeight
			lineHeight = 0

			e.layoutElement(child, availW, availH, false, currentX, currentY)
			total = child.Box.OuterWidth()
		}

		currentX += total
		if h := child.Box.OuterHeight(); h > lineHeight {
			lineHeight = h
		}
	}
}
