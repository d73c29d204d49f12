package markup

import (
	"strings"

	"slate/pkg/style"
)

// Element is a node in the markup tree. The tree is built by an external
// parser (see FromHTML) and read by the layout engine; the only field the
// engine writes is Box, which is replaced wholesale on every layout pass.
type Element struct {
	Tag        string
	Attributes map[string]string
	Text       string
	Children   []*Element
	Parent     *Element // non-owning back-reference

	// ComputedStyle is produced by the style collaborator before layout.
	// The engine reads it but never rewrites it in bulk.
	ComputedStyle *style.Style

	// Box is the layout output. Nil until the first layout pass.
	Box *LayoutBox
}

func NewElement(tag string) *Element {
	return &Element{
		Tag:           tag,
		Attributes:    make(map[string]string),
		ComputedStyle: style.New(),
	}
}

func (e *Element) GetAttribute(name string) (string, bool) {
	if e.Attributes == nil {
		return "", false
	}
	val, ok := e.Attributes[name]
	return val, ok
}

func (e *Element) SetAttribute(name, value string) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[name] = value
}

// AppendChild adds a child and sets up the parent relationship.
// Ownership runs strictly parent to children; Parent is only a back-pointer.
func (e *Element) AppendChild(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
}

// HasText reports whether the element carries non-whitespace text content.
func (e *Element) HasText() bool {
	return strings.TrimSpace(e.Text) != ""
}

// Walk visits e and every descendant in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// LayoutBox holds the computed geometry for one element. All coordinates are
// absolute, rooted at the viewport origin. X/Y locate the box edge (margins
// lie outside it); Width/Height span padding plus content, so the area
// available to children is ContentWidth by ContentHeight. A fresh LayoutBox
// is attached on every layout pass; values from earlier passes are never
// reused.
type LayoutBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64

	BorderWidth float64

	Position style.PositionType

	// Positioning offsets. Nil means "auto", which is distinct from zero.
	Top    *float64
	Right  *float64
	Bottom *float64
	Left   *float64

	MinWidth  *float64
	MaxWidth  *float64
	MinHeight *float64
	MaxHeight *float64

	// Flex participation.
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  *float64 // resolved px; nil means auto
	Order      int

	// Grid participation.
	GridArea        string
	GridColumnStart int
	GridColumnEnd   int
	GridRowStart    int
	GridRowEnd      int
}

// ContentLeft returns the x coordinate of the content area's left edge.
// X already points at the box edge, so padding offsets apply inward.
func (b *LayoutBox) ContentLeft() float64 {
	return b.X + b.PaddingLeft
}

func (b *LayoutBox) ContentTop() float64 {
	return b.Y + b.PaddingTop
}

// ContentWidth returns the width available to children.
func (b *LayoutBox) ContentWidth() float64 {
	w := b.Width - b.PaddingLeft - b.PaddingRight
	if w < 0 {
		return 0
	}
	return w
}

func (b *LayoutBox) ContentHeight() float64 {
	h := b.Height - b.PaddingTop - b.PaddingBottom
	if h < 0 {
		return 0
	}
	return h
}

// OuterWidth is the horizontal footprint including margins.
func (b *LayoutBox) OuterWidth() float64 {
	return b.MarginLeft + b.Width + b.MarginRight
}

// OuterHeight is the vertical footprint including margins.
func (b *LayoutBox) OuterHeight() float64 {
	return b.MarginTop + b.Height + b.MarginBottom
}
