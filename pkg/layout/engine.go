package layout

import (
	"go.uber.org/zap"

	"slate/pkg/markup"
	"slate/pkg/style"
)

// ViewportConfig is the fixed coordinate frame for one engine instance.
// It is captured at construction and never mutated during a pass, so
// independent engines at different viewport sizes can run side by side.
type ViewportConfig struct {
	Width  float64
	Height float64
	// RootFontSize is the px size em/rem resolve against. Zero means 16.
	RootFontSize float64
}

// Engine computes layout for an element tree. Layout is a synchronous,
// non-reentrant tree walk: no I/O, no suspension, cost O(tree size) per
// call. Each call attaches a fresh LayoutBox to every visited element and
// never fails; malformed input degrades to safe defaults instead.
type Engine struct {
	viewport ViewportConfig
	lengths  LengthResolver
	sizer    AutoSizer
	log      *zap.Logger
}

type Option func(*Engine)

// WithLogger installs a diagnostics logger. Logging is trace-only: it must
// never influence geometry, and the default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithAutoSizer replaces the default tag-heuristic auto-sizing policy.
func WithAutoSizer(sizer AutoSizer) Option {
	return func(e *Engine) {
		if sizer != nil {
			e.sizer = sizer
		}
	}
}

// WithTextMeasurer plugs a text measurement hook into the default sizer.
func WithTextMeasurer(measure TextMeasurer) Option {
	return func(e *Engine) {
		if th, ok := e.sizer.(*TagHeuristics); ok && measure != nil {
			th.Measure = measure
		}
	}
}

func NewEngine(viewport ViewportConfig, opts ...Option) *Engine {
	e := &Engine{
		viewport: viewport,
		lengths: LengthResolver{
			ViewportWidth:  viewport.Width,
			ViewportHeight: viewport.Height,
			RootFontSize:   viewport.RootFontSize,
		},
		log: zap.NewNop(),
	}
	e.sizer = NewTagHeuristics(&e.lengths)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lengths exposes the engine's resolver for collaborators (renderer, tests)
// that need identical unit semantics.
func (e *Engine) Lengths() *LengthResolver {
	return &e.lengths
}

// Layout computes geometry for root and its entire subtree against the
// engine's viewport. After it returns, every visited element has a non-nil
// Box with non-negative dimensions.
func (e *Engine) Layout(root *markup.Element) {
	if root == nil {
		return
	}
	e.layoutElement(root, e.viewport.Width, e.viewport.Height, true, 0, 0)
}

// layoutElement is the recursive worker: box model, then positioning, then
// dispatch on display to the flow algorithm that places children.
func (e *Engine) layoutElement(el *markup.Element, containerW, containerH float64, isRoot bool, x, y float64) {
	if el.ComputedStyle == nil {
		el.ComputedStyle = style.New()
	}

	box := e.resolveBoxModel(el, containerW, containerH, isRoot)
	el.Box = box

	e.applyPosition(box, containerW, containerH, x, y)

	switch el.ComputedStyle.GetDisplay(el.Tag) {
	case style.DisplayGrid:
		e.layoutGridChildren(el)
	case style.DisplayFlex:
		e.layoutFlexChildren(el)
	default:
		if hasInlineChildren(el) {
			e.layoutInlineChildren(el)
		} else {
			e.layoutBlockChildren(el)
		}
	}

	e.log.Debug("laid out element",
		zap.String("tag", el.Tag),
		zap.Float64("x", box.X),
		zap.Float64("y", box.Y),
		zap.Float64("width", box.Width),
		zap.Float64("height", box.Height),
	)
}

// hasInlineChildren reports whether any child participates in inline flow,
// which switches the parent's normal flow from block stacking to line
// packing.
func hasInlineChildren(el *markup.Element) bool {
	for _, child := range el.Children {
		if child.ComputedStyle == nil {
			continue
		}
		switch child.ComputedStyle.GetDisplay(child.Tag) {
		case style.DisplayInline, style.DisplayInlineBlock:
			return true
		}
	}
	return false
}

// flowChildren prepares a container's children for a flow algorithm:
// display:none children get a zero box and drop out, absolutely and fixed
// positioned children are laid out against the containing block and removed
// from flow, and the in-flow remainder is returned in source order.
func (e *Engine) flowChildren(el *markup.Element, contentX, contentY, availW, availH float64) []*markup.Element {
	inFlow := make([]*markup.Element, 0, len(el.Children))
	for _, child := range el.Children {
		if child.ComputedStyle == nil {
			child.ComputedStyle = style.New()
		}
		if child.ComputedStyle.GetDisplay(child.Tag) == style.DisplayNone {
			child.Box = &markup.LayoutBox{Position: style.PositionStatic}
			continue
		}
		switch child.ComputedStyle.GetPosition() {
		case style.PositionAbsolute, style.PositionFixed:
			e.layoutElement(child, availW, availH, false, contentX, contentY)
		default:
			inFlow = append(inFlow, child)
		}
	}
	return inFlow
}
