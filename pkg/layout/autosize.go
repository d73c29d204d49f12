package layout

import (
	"strconv"
	"strings"

	"slate/pkg/markup"
)

// TextMeasurer estimates the rendered extent of a text run at a font size.
// Real text metrics are a collaborator concern; the default is a plain
// character-count model.
type TextMeasurer func(text string, fontSizePx float64) (width, height float64)

// DefaultTextMeasurer approximates each character as 8px wide and a line as
// 1.2 times the font size.
func DefaultTextMeasurer(text string, fontSizePx float64) (width, height float64) {
	return float64(len([]rune(text))) * 8, fontSizePx * 1.2
}

// AutoSizer estimates dimensions for elements whose style gives no explicit
// width or height. It is a replaceable policy: the default is a tag-based
// heuristic table, not a content-measurement pass: a container's auto
// height is estimated without laying out its children first. The specific
// constants below are load-bearing for callers.
type AutoSizer interface {
	EstimateHeight(el *markup.Element, containerHeight float64) float64
	EstimateWidth(el *markup.Element, containerWidth float64) float64
}

// Fallback heights per tag, consulted after the text and container rules.
// Adding a special-cased tag is a data change here, not a new branch in the
// box model.
var defaultTagHeights = map[string]float64{
	"h1": 60, "h2": 50, "h3": 40, "h4": 35, "h5": 30, "h6": 25,
	"button": 40, "input": 40, "select": 40,
	"p": 30, "li": 30,
}

var containerTags = map[string]bool{
	"div": true, "section": true, "main": true, "aside": true,
	"article": true, "header": true, "footer": true, "nav": true,
}

// TagHeuristics is the default AutoSizer.
type TagHeuristics struct {
	Lengths *LengthResolver
	Measure TextMeasurer
	// Heights overrides defaultTagHeights per tag when non-nil.
	Heights map[string]float64
}

func NewTagHeuristics(lengths *LengthResolver) *TagHeuristics {
	return &TagHeuristics{
		Lengths: lengths,
		Measure: DefaultTextMeasurer,
	}
}

func (t *TagHeuristics) tagHeight(tag string) (float64, bool) {
	if t.Heights != nil {
		if h, ok := t.Heights[tag]; ok {
			return h, true
		}
	}
	h, ok := defaultTagHeights[tag]
	return h, ok
}

// EstimateHeight applies the policy rules in priority order: root tags,
// text content, structural containers, then the per-tag table.
func (t *TagHeuristics) EstimateHeight(el *markup.Element, containerHeight float64) float64 {
	st := el.ComputedStyle

	switch el.Tag {
	case "html":
		return t.Lengths.ViewportHeight
	case "body":
		marginTop := t.Lengths.Resolve(st.GetOr("margin-top", "0"), 0)
		marginBottom := t.Lengths.Resolve(st.GetOr("margin-bottom", "0"), 0)
		if st.Has("margin") {
			marginTop, _, marginBottom, _ = t.Lengths.ExpandShorthand(st.GetOr("margin", "0"), 0)
		}
		h := containerHeight - marginTop - marginBottom
		if h < 100 {
			h = 100
		}
		return h
	}

	if el.HasText() {
		return t.textHeight(el)
	}

	if containerTags[el.Tag] {
		hasBackground := st.Has("background-color") || st.Has("background")
		hasPadding := st.Has("padding") || st.Has("padding-top")
		if hasBackground || hasPadding {
			return 200
		}
		return 50
	}

	if h, ok := t.tagHeight(el.Tag); ok {
		return h
	}
	return 30
}

func (t *TagHeuristics) textHeight(el *markup.Element) float64 {
	st := el.ComputedStyle
	fontSize := t.Lengths.Resolve(st.GetOr("font-size", "16px"), 0)
	if fontSize <= 0 {
		fontSize = 16
	}

	lineHeight := fontSize * 1.2
	if lh, ok := st.Get("line-height"); ok {
		if strings.HasSuffix(lh, "px") {
			lineHeight = t.Lengths.Resolve(lh, 0)
		} else if mult, err := strconv.ParseFloat(strings.TrimSpace(lh), 64); err == nil {
			lineHeight = mult * fontSize
		}
	} else if t.Measure != nil {
		if _, mh := t.Measure(el.Text, fontSize); mh > 0 {
			lineHeight = mh
		}
	}

	paddingTop := t.Lengths.Resolve(st.GetOr("padding-top", "0"), 0)
	paddingBottom := t.Lengths.Resolve(st.GetOr("padding-bottom", "0"), 0)
	if st.Has("padding") {
		paddingTop, _, paddingBottom, _ = t.Lengths.ExpandShorthand(st.GetOr("padding", "0"), 0)
	}

	h := lineHeight + paddingTop + paddingBottom
	if h < 30 {
		h = 30
	}
	return h
}

// EstimateWidth sizes text-bearing leaves from measured text and lets
// everything else fill the container. Buttons get extra chrome width and a
// cap so they do not stretch across the container.
func (t *TagHeuristics) EstimateWidth(el *markup.Element, containerWidth float64) float64 {
	st := el.ComputedStyle

	paddingLeft := t.Lengths.Resolve(st.GetOr("padding-left", "0"), containerWidth)
	paddingRight := t.Lengths.Resolve(st.GetOr("padding-right", "0"), containerWidth)
	if st.Has("padding") {
		_, paddingRight, _, paddingLeft = t.Lengths.ExpandShorthand(st.GetOr("padding", "0"), containerWidth)
	}

	if el.Tag == "button" && el.HasText() {
		fontSize := t.Lengths.Resolve(st.GetOr("font-size", "16px"), 0)
		textWidth, _ := t.measure(el.Text, fontSize)
		estimate := textWidth + paddingLeft + paddingRight + 20
		limit := 150.0
		if containerWidth < limit {
			limit = containerWidth
		}
		if estimate > limit {
			return estimate
		}
		return limit
	}

	if el.HasText() {
		fontSize := t.Lengths.Resolve(st.GetOr("font-size", "16px"), 0)
		textWidth, _ := t.measure(el.Text, fontSize)
		w := textWidth + paddingLeft + paddingRight
		if w > containerWidth && containerWidth > 0 {
			w = containerWidth
		}
		return w
	}

	if containerWidth < 0 {
		return 0
	}
	return containerWidth
}

func (t *TagHeuristics) measure(text string, fontSize float64) (float64, float64) {
	if t.Measure != nil {
		return t.Measure(text, fontSize)
	}
	return DefaultTextMeasurer(text, fontSize)
}
