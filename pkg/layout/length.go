// Package layout computes box geometry for a markup element tree: box-model
// resolution, positioning, and the block, inline, flex, and grid flow
// algorithms. The entry point is Engine.Layout. Layout never fails: garbage
// style values resolve to safe defaults, impossible structures fall back to
// simpler layout modes, and every visited element ends up with a valid
// (possibly zero-sized) box.
package layout

import (
	"strconv"
	"strings"
)

// LengthResolver converts CSS-like length strings into absolute pixels.
// All string-to-number coercion in the engine funnels through here; the
// individual algorithms never reparse units themselves. The resolver is
// immutable for the lifetime of an engine so concurrent engines at
// different viewports cannot contaminate each other.
type LengthResolver struct {
	ViewportWidth  float64
	ViewportHeight float64
	RootFontSize   float64 // px; em and rem both resolve against this
}

// Resolve parses value against a reference size (the dimension percentages
// are relative to). "auto", empty, and unparseable input all yield 0 —
// callers that need to distinguish real auto-sizing must check for "auto"
// before resolving.
func (r *LengthResolver) Resolve(value string, reference float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" || value == "auto" || value == "none" {
		return 0
	}

	parse := func(num string) (float64, bool) {
		f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		return f, err == nil
	}

	switch {
	case strings.HasSuffix(value, "px"):
		if f, ok := parse(value[:len(value)-2]); ok {
			return f
		}
	case strings.HasSuffix(value, "%"):
		if f, ok := parse(value[:len(value)-1]); ok {
			return reference * f / 100
		}
	case strings.HasSuffix(value, "rem"):
		if f, ok := parse(value[:len(value)-3]); ok {
			return f * r.rootFontSize()
		}
	case strings.HasSuffix(value, "em"):
		if f, ok := parse(value[:len(value)-2]); ok {
			return f * r.rootFontSize()
		}
	case strings.HasSuffix(value, "vh"):
		if f, ok := parse(value[:len(value)-2]); ok {
			return r.ViewportHeight * f / 100
		}
	case strings.HasSuffix(value, "vw"):
		if f, ok := parse(value[:len(value)-2]); ok {
			return r.ViewportWidth * f / 100
		}
	default:
		if f, ok := parse(value); ok {
			return f
		}
	}
	return 0
}

// ResolveOptional is Resolve for properties where absence matters: it
// returns nil when the property is missing or "auto" so callers can keep
// "unset" distinct from zero (position offsets, min/max constraints).
func (r *LengthResolver) ResolveOptional(value string, present bool, reference float64) *float64 {
	if !present {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" || value == "auto" || value == "none" {
		return nil
	}
	v := r.Resolve(value, reference)
	return &v
}

// ExpandShorthand applies the standard 1/2/3/4-value box expansion:
// one value sets all sides, two set vertical/horizontal, three set
// top/horizontal/bottom, four are top right bottom left in that order.
func (r *LengthResolver) ExpandShorthand(value string, reference float64) (top, right, bottom, left float64) {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		v := r.Resolve(parts[0], reference)
		return v, v, v, v
	case 2:
		v := r.Resolve(parts[0], reference)
		h := r.Resolve(parts[1], reference)
		return v, h, v, h
	case 3:
		t := r.Resolve(parts[0], reference)
		h := r.Resolve(parts[1], reference)
		b := r.Resolve(parts[2], reference)
		return t, h, b, h
	case 4:
		return r.Resolve(parts[0], reference),
			r.Resolve(parts[1], reference),
			r.Resolve(parts[2], reference),
			r.Resolve(parts[3], reference)
	}
	return 0, 0, 0, 0
}

func (r *LengthResolver) rootFontSize() float64 {
	if r.RootFontSize <= 0 {
		return 16
	}
	return r.RootFontSize
}
