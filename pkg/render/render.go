// Package render rasterizes a laid-out element tree to an image. It paints
// backgrounds, borders, and text from each element's computed style and the
// geometry the layout pass left on its box.
package render

import (
	"image"
	"sort"

	"github.com/fogleman/gg"

	"slate/pkg/markup"
	"slate/pkg/style"
)

type Renderer struct {
	context *gg.Context
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render paints the tree onto a white canvas. Elements are flattened and
// drawn in z-index order; within the same z-index, tree order wins, so
// parents paint under their children.
func (r *Renderer) Render(root *markup.Element) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	elements := collectElements(root)
	sort.SliceStable(elements, func(i, j int) bool {
		return zIndex(elements[i]) < zIndex(elements[j])
	})

	for _, el := range elements {
		r.drawElement(el)
	}
}

func collectElements(el *markup.Element) []*markup.Element {
	if el == nil || el.Box == nil {
		return nil
	}
	result := []*markup.Element{el}
	for _, child := range el.Children {
		result = append(result, collectElements(child)...)
	}
	return result
}

func zIndex(el *markup.Element) int {
	if el.ComputedStyle == nil {
		return 0
	}
	return el.ComputedStyle.GetInt("z-index", 0)
}

func (r *Renderer) drawElement(el *markup.Element) {
	if el.ComputedStyle != nil && el.ComputedStyle.GetDisplay(el.Tag) == style.DisplayNone {
		return
	}
	r.drawBackground(el)
	r.drawBorder(el)
	r.drawText(el)
}

// drawBackground fills the padding box. Box.Width and Box.Height already
// span padding plus content, so the rectangle is the box itself.
func (r *Renderer) drawBackground(el *markup.Element) {
	if el.ComputedStyle == nil {
		return
	}
	value, ok := el.ComputedStyle.Get("background-color")
	if !ok {
		return
	}
	color, ok := style.ParseColor(value)
	if !ok || color.A <= 0 {
		return
	}

	box := el.Box
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	r.setColor(color)
	r.context.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	r.context.Fill()
}

// drawBorder paints each side as a filled trapezoid between the border box
// and the padding box, giving mitered corners.
func (r *Renderer) drawBorder(el *markup.Element) {
	box := el.Box
	if box.BorderWidth <= 0 || el.ComputedStyle == nil {
		return
	}

	color, ok := borderColor(el.ComputedStyle)
	if !ok || color.A <= 0 {
		return
	}
	r.setColor(color)

	bw := box.BorderWidth
	outerLeft := box.X - bw
	outerTop := box.Y - bw
	outerRight := box.X + box.Width + bw
	outerBottom := box.Y + box.Height + bw
	innerLeft := box.X
	innerTop := box.Y
	innerRight := box.X + box.Width
	innerBottom := box.Y + box.Height

	// top
	r.context.MoveTo(outerLeft, outerTop)
	r.context.LineTo(outerRight, outerTop)
	r.context.LineTo(innerRight, innerTop)
	r.context.LineTo(innerLeft, innerTop)
	r.context.ClosePath()
	r.context.Fill()

	// right
	r.context.MoveTo(outerRight, outerTop)
	r.context.LineTo(outerRight, outerBottom)
	r.context.LineTo(innerRight, innerBottom)
	r.context.LineTo(innerRight, innerTop)
	r.context.ClosePath()
	r.context.Fill()

	// bottom
	r.context.MoveTo(outerLeft, outerBottom)
	r.context.LineTo(outerRight, outerBottom)
	r.context.LineTo(innerRight, innerBottom)
	r.context.LineTo(innerLeft, innerBottom)
	r.context.ClosePath()
	r.context.Fill()

	// left
	r.context.MoveTo(outerLeft, outerTop)
	r.context.LineTo(outerLeft, outerBottom)
	r.context.LineTo(innerLeft, innerBottom)
	r.context.LineTo(innerLeft, innerTop)
	r.context.ClosePath()
	r.context.Fill()
}

// borderColor resolves border-color, falling back to the element's color
// property and then black.
func borderColor(st *style.Style) (style.Color, bool) {
	if value, ok := st.Get("border-color"); ok {
		if color, ok := style.ParseColor(value); ok {
			return color, true
		}
	}
	if value, ok := st.Get("color"); ok {
		if color, ok := style.ParseColor(value); ok {
			return color, true
		}
	}
	return style.Color{R: 0, G: 0, B: 0, A: 1.0}, true
}

// drawText renders the element's direct text wrapped inside the content
// box, using gg's built-in bitmap face.
func (r *Renderer) drawText(el *markup.Element) {
	if !el.HasText() {
		return
	}

	color := style.Color{R: 0, G: 0, B: 0, A: 1.0}
	if el.ComputedStyle != nil {
		if value, ok := el.ComputedStyle.Get("color"); ok {
			if parsed, ok := style.ParseColor(value); ok {
				color = parsed
			}
		}
	}
	if color.A <= 0 {
		return
	}
	r.setColor(color)

	box := el.Box
	width := box.ContentWidth()
	if width <= 0 {
		return
	}
	r.context.DrawStringWrapped(el.Text, box.ContentLeft(), box.ContentTop(), 0, 0, width, 1.2, gg.AlignLeft)
}

func (r *Renderer) setColor(c style.Color) {
	r.context.SetRGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, c.A)
}

// Image exposes the backing image, mainly for tests.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}
