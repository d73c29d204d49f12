// Package style holds the computed-style model consumed by the layout
// engine: a string-keyed property map with typed getters, tag display
// defaults, and inline-declaration parsing. Selector matching, cascade, and
// specificity are deliberately absent — callers hand the engine styles that
// are already resolved.
package style

import (
	"strconv"
	"strings"
)

type Style struct {
	Properties map[string]string
}

func New() *Style {
	return &Style{Properties: make(map[string]string)}
}

func (s *Style) Get(property string) (string, bool) {
	val, ok := s.Properties[property]
	return val, ok
}

// GetOr returns the property value or def when the property is absent.
func (s *Style) GetOr(property, def string) string {
	if val, ok := s.Properties[property]; ok {
		return val
	}
	return def
}

func (s *Style) Set(property, value string) {
	s.Properties[property] = value
}

func (s *Style) Has(property string) bool {
	_, ok := s.Properties[property]
	return ok
}

// Clone returns an independent copy. Layout passes are expected to run
// against an immutable snapshot; collaborators that animate styles should
// clone, mutate the clone, and trigger a fresh layout.
func (s *Style) Clone() *Style {
	c := New()
	for k, v := range s.Properties {
		c.Properties[k] = v
	}
	return c
}

type DisplayType string

const (
	DisplayBlock       DisplayType = "block"
	DisplayInline      DisplayType = "inline"
	DisplayInlineBlock DisplayType = "inline-block"
	DisplayFlex        DisplayType = "flex"
	DisplayGrid        DisplayType = "grid"
	DisplayNone        DisplayType = "none"
)

// GetDisplay returns the computed display, falling back to the tag's
// browser default when the property is absent or unrecognized.
func (s *Style) GetDisplay(tag string) DisplayType {
	switch DisplayType(s.GetOr("display", "")) {
	case DisplayBlock:
		return DisplayBlock
	case DisplayInline:
		return DisplayInline
	case DisplayInlineBlock:
		return DisplayInlineBlock
	case DisplayFlex:
		return DisplayFlex
	case DisplayGrid:
		return DisplayGrid
	case DisplayNone:
		return DisplayNone
	}
	return DefaultDisplay(tag)
}

type PositionType string

const (
	PositionStatic   PositionType = "static"
	PositionRelative PositionType = "relative"
	PositionAbsolute PositionType = "absolute"
	PositionFixed    PositionType = "fixed"
	PositionSticky   PositionType = "sticky"
)

// GetPosition returns the position type, defaulting to static on garbage.
func (s *Style) GetPosition() PositionType {
	switch PositionType(s.GetOr("position", "static")) {
	case PositionRelative:
		return PositionRelative
	case PositionAbsolute:
		return PositionAbsolute
	case PositionFixed:
		return PositionFixed
	case PositionSticky:
		return PositionSticky
	}
	return PositionStatic
}

type FlexDirection string

const (
	FlexDirectionRow           FlexDirection = "row"
	FlexDirectionRowReverse    FlexDirection = "row-reverse"
	FlexDirectionColumn        FlexDirection = "column"
	FlexDirectionColumnReverse FlexDirection = "column-reverse"
)

func (s *Style) GetFlexDirection() FlexDirection {
	switch FlexDirection(s.GetOr("flex-direction", "row")) {
	case FlexDirectionColumn:
		return FlexDirectionColumn
	case FlexDirectionRowReverse:
		return FlexDirectionRowReverse
	case FlexDirectionColumnReverse:
		return FlexDirectionColumnReverse
	}
	return FlexDirectionRow
}

type FlexWrap string

const (
	FlexWrapNowrap      FlexWrap = "nowrap"
	FlexWrapWrap        FlexWrap = "wrap"
	FlexWrapWrapReverse FlexWrap = "wrap-reverse"
)

func (s *Style) GetFlexWrap() FlexWrap {
	switch FlexWrap(s.GetOr("flex-wrap", "nowrap")) {
	case FlexWrapWrap:
		return FlexWrapWrap
	case FlexWrapWrapReverse:
		return FlexWrapWrapReverse
	}
	return FlexWrapNowrap
}

type JustifyContent string

const (
	JustifyFlexStart    JustifyContent = "flex-start"
	JustifyFlexEnd      JustifyContent = "flex-end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
)

func (s *Style) GetJustifyContent() JustifyContent {
	switch JustifyContent(s.GetOr("justify-content", "flex-start")) {
	case JustifyFlexEnd:
		return JustifyFlexEnd
	case JustifyCenter:
		return JustifyCenter
	case JustifySpaceBetween:
		return JustifySpaceBetween
	case JustifySpaceAround:
		return JustifySpaceAround
	case JustifySpaceEvenly:
		return JustifySpaceEvenly
	}
	return JustifyFlexStart
}

type AlignItems string

const (
	AlignItemsStretch   AlignItems = "stretch"
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsCenter    AlignItems = "center"
)

func (s *Style) GetAlignItems() AlignItems {
	switch AlignItems(s.GetOr("align-items", "stretch")) {
	case AlignItemsFlexStart:
		return AlignItemsFlexStart
	case AlignItemsFlexEnd:
		return AlignItemsFlexEnd
	case AlignItemsCenter:
		return AlignItemsCenter
	}
	return AlignItemsStretch
}

// GetAlignSelf returns the per-item cross-axis override, or ("", false)
// when the item inherits the container's align-items.
func (s *Style) GetAlignSelf() (AlignItems, bool) {
	val, ok := s.Get("align-self")
	if !ok || val == "auto" {
		return "", false
	}
	switch AlignItems(val) {
	case AlignItemsStretch, AlignItemsFlexStart, AlignItemsFlexEnd, AlignItemsCenter:
		return AlignItems(val), true
	}
	return "", false
}

type AlignContent string

const (
	AlignContentStretch      AlignContent = "stretch"
	AlignContentFlexStart    AlignContent = "flex-start"
	AlignContentFlexEnd      AlignContent = "flex-end"
	AlignContentCenter       AlignContent = "center"
	AlignContentSpaceBetween AlignContent = "space-between"
	AlignContentSpaceAround  AlignContent = "space-around"
	AlignContentSpaceEvenly  AlignContent = "space-evenly"
)

func (s *Style) GetAlignContent() AlignContent {
	switch AlignContent(s.GetOr("align-content", "stretch")) {
	case AlignContentFlexStart:
		return AlignContentFlexStart
	case AlignContentFlexEnd:
		return AlignContentFlexEnd
	case AlignContentCenter:
		return AlignContentCenter
	case AlignContentSpaceBetween:
		return AlignContentSpaceBetween
	case AlignContentSpaceAround:
		return AlignContentSpaceAround
	case AlignContentSpaceEvenly:
		return AlignContentSpaceEvenly
	}
	return AlignContentStretch
}

// GetFloat parses a unitless numeric property such as flex-grow or order.
// Malformed values fall back to def rather than erroring; upstream style
// computation is best-effort and layout must tolerate garbage.
func (s *Style) GetFloat(property string, def float64) float64 {
	val, ok := s.Get(property)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return def
	}
	return f
}

func (s *Style) GetInt(property string, def int) int {
	return int(s.GetFloat(property, float64(def)))
}

// Flex returns grow, shrink, and basis, expanding the "flex" shorthand when
// the longhands are absent. Basis is returned as the raw string ("auto"
// when unspecified); length resolution happens in the layout core.
func (s *Style) Flex() (grow, shrink float64, basis string) {
	grow = s.GetFloat("flex-grow", 0)
	shrink = s.GetFloat("flex-shrink", 1)
	basis = s.GetOr("flex-basis", "auto")

	shorthand, ok := s.Get("flex")
	if !ok {
		return grow, shrink, basis
	}
	parts := strings.Fields(shorthand)
	if len(parts) >= 1 && !s.Has("flex-grow") {
		if g, err := strconv.ParseFloat(parts[0], 64); err == nil {
			grow = g
		}
	}
	if len(parts) >= 2 && !s.Has("flex-shrink") {
		if sh, err := strconv.ParseFloat(parts[1], 64); err == nil {
			shrink = sh
		}
	}
	if len(parts) >= 3 && !s.Has("flex-basis") {
		basis = parts[2]
	}
	return grow, shrink, basis
}

// Gaps returns the raw row and column gap values, honoring gap/grid-gap as
// the shared shorthand and row-gap/column-gap as overrides.
func (s *Style) Gaps() (rowGap, columnGap string) {
	gap := s.GetOr("gap", s.GetOr("grid-gap", "0"))
	// Two-value form: "<row> <column>".
	if parts := strings.Fields(gap); len(parts) == 2 {
		return s.GetOr("row-gap", parts[0]), s.GetOr("column-gap", parts[1])
	}
	return s.GetOr("row-gap", gap), s.GetOr("column-gap", gap)
}
