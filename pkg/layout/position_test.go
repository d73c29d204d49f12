package layout

import "testing"

func TestPosition_AbsoluteLeftTop(t *testing.T) {
	child := buildElement("div", map[string]string{
		"position": "absolute", "left": "30px", "top": "40px",
		"width": "50px", "height": "50px",
	})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, child)
	newTestEngine().Layout(root)

	if child.Box.X != 30 || child.Box.Y != 40 {
		t.Errorf("absolute child at (%g,%g), want (30,40)", child.Box.X, child.Box.Y)
	}
}

func TestPosition_AbsoluteRightAnchorsToFarEdge(t *testing.T) {
	child := buildElement("div", map[string]string{
		"position": "absolute", "right": "10px", "top": "5px",
		"width": "100px", "height": "50px",
	})
	root := buildElement("div", map[string]string{"width": "500px", "height": "300px"}, child)
	newTestEngine().Layout(root)

	if child.Box.X != 390 || child.Box.Y != 5 {
		t.Errorf("absolute child at (%g,%g), want (390,5)", child.Box.X, child.Box.Y)
	}
}

func TestPosition_LeftBeatsRight(t *testing.T) {
	child := buildElement("div", map[string]string{
		"position": "absolute", "left": "20px", "right": "10px",
		"width": "100px", "height": "50px",
	})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, child)
	newTestEngine().Layout(root)

	if child.Box.X != 20 {
		t.Errorf("x = %g, want 20 (left wins)", child.Box.X)
	}
}

func TestPosition_AbsoluteAgainstParentContentBox(t *testing.T) {
	abs := buildElement("div", map[string]string{
		"position": "absolute", "left": "10px", "top": "10px",
		"width": "20px", "height": "20px",
	})
	parent := buildElement("div", map[string]string{
		"width": "200px", "height": "200px", "padding": "15px",
	}, abs)
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, parent)
	newTestEngine().Layout(root)

	// Offsets apply from the parent's content edge, not its box edge.
	if abs.Box.X != 25 || abs.Box.Y != 25 {
		t.Errorf("absolute child at (%g,%g), want (25,25)", abs.Box.X, abs.Box.Y)
	}
}

func TestPosition_AbsoluteRemovedFromFlow(t *testing.T) {
	abs := buildElement("div", map[string]string{
		"position": "absolute", "top": "0", "height": "100px",
	})
	after := buildElement("div", map[string]string{"height": "50px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, abs, after)
	newTestEngine().Layout(root)

	if after.Box.Y != 0 {
		t.Errorf("in-flow sibling at y=%g, want 0 (absolute child takes no space)", after.Box.Y)
	}
}

func TestPosition_FixedIgnoresAncestorOffsets(t *testing.T) {
	fixed := buildElement("div", map[string]string{
		"position": "fixed", "left": "10px", "top": "10px",
		"width": "20px", "height": "20px",
	})
	parent := buildElement("div", map[string]string{
		"width": "200px", "height": "200px", "margin": "50px",
	}, fixed)
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, parent)
	newTestEngine().Layout(root)

	if fixed.Box.X != 10 || fixed.Box.Y != 10 {
		t.Errorf("fixed child at (%g,%g), want viewport-relative (10,10)", fixed.Box.X, fixed.Box.Y)
	}
}

func TestPosition_RelativeNudgesFromFlowSlot(t *testing.T) {
	first := buildElement("div", map[string]string{"height": "50px"})
	rel := buildElement("div", map[string]string{
		"position": "relative", "left": "10px", "top": "-5px", "height": "50px",
	})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, first, rel)
	newTestEngine().Layout(root)

	if rel.Box.X != 10 || rel.Box.Y != 45 {
		t.Errorf("relative child at (%g,%g), want (10,45)", rel.Box.X, rel.Box.Y)
	}
}

func TestPosition_RelativeStillOccupiesFlow(t *testing.T) {
	rel := buildElement("div", map[string]string{
		"position": "relative", "top": "100px", "height": "50px",
	})
	after := buildElement("div", map[string]string{"height": "50px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, rel, after)
	newTestEngine().Layout(root)

	// The sibling stacks as if the relative child had not moved.
	if after.Box.Y != 50 {
		t.Errorf("sibling at y=%g, want 50", after.Box.Y)
	}
}

func TestPosition_StickyBehavesAsRelative(t *testing.T) {
	sticky := buildElement("div", map[string]string{
		"position": "sticky", "top": "10px", "height": "50px",
	})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, sticky)
	newTestEngine().Layout(root)

	if sticky.Box.Y != 10 {
		t.Errorf("sticky child at y=%g, want 10", sticky.Box.Y)
	}
}

func TestPosition_BottomAnchorsWhenTopAbsent(t *testing.T) {
	child := buildElement("div", map[string]string{
		"position": "absolute", "bottom": "10px", "left": "0",
		"width": "50px", "height": "50px",
	})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, child)
	newTestEngine().Layout(root)

	if child.Box.Y != 240 {
		t.Errorf("y = %g, want 240", child.Box.Y)
	}
}
