package style

// Browser-default display values per tag. Anything not listed is block,
// which matches how the layout engine treats unknown elements.
var inlineTags = map[string]bool{
	"span": true, "a": true, "b": true, "i": true, "u": true,
	"em": true, "strong": true, "small": true, "code": true,
	"label": true, "sub": true, "sup": true, "abbr": true,
}

var inlineBlockTags = map[string]bool{
	"button": true, "input": true, "select": true, "img": true,
	"textarea": true,
}

// DefaultDisplay returns the display type a browser would assign to tag
// when no display property is present.
func DefaultDisplay(tag string) DisplayType {
	if inlineTags[tag] {
		return DisplayInline
	}
	if inlineBlockTags[tag] {
		return DisplayInlineBlock
	}
	return DisplayBlock
}

// DefaultStyles returns the base property map applied to an element before
// any author declarations. Kept minimal: just the handful of defaults the
// original engine's layouts depend on.
func DefaultStyles(tag string) map[string]string {
	base := map[string]string{
		"font-size": "16px",
	}
	switch tag {
	case "body":
		base["margin"] = "8px"
	case "h1":
		base["font-size"] = "32px"
	case "h2":
		base["font-size"] = "24px"
	case "h3":
		base["font-size"] = "18px"
	case "button", "input":
		base["padding"] = "5px 10px"
	}
	return base
}

// Compute produces the computed style for an element with the given tag,
// layering author declarations over the tag defaults. decls may be nil.
func Compute(tag string, decls map[string]string) *Style {
	s := New()
	for k, v := range DefaultStyles(tag) {
		s.Set(k, v)
	}
	for k, v := range decls {
		s.Set(k, v)
	}
	return s
}
