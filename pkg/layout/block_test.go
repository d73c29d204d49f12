package layout

import "testing"

func TestBlock_VerticalStacking(t *testing.T) {
	a := buildElement("div", map[string]string{"height": "50px"})
	b := buildElement("div", map[string]string{"height": "50px"})
	c := buildElement("div", map[string]string{"height": "50px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, a, b, c)
	newTestEngine().Layout(root)

	if a.Box.Y != 0 || b.Box.Y != 50 || c.Box.Y != 100 {
		t.Errorf("ys = %g %g %g, want 0 50 100", a.Box.Y, b.Box.Y, c.Box.Y)
	}
}

func TestBlock_MarginsSeparateSiblings(t *testing.T) {
	a := buildElement("div", map[string]string{"height": "50px", "margin": "10px"})
	b := buildElement("div", map[string]string{"height": "50px", "margin": "10px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, a, b)
	newTestEngine().Layout(root)

	if a.Box.X != 10 || a.Box.Y != 10 {
		t.Errorf("first child at (%g,%g), want (10,10)", a.Box.X, a.Box.Y)
	}
	// Margin footprint of the first child is 10+50+10; the second adds its
	// own top margin. Margins do not collapse.
	if b.Box.Y != 80 {
		t.Errorf("second child at y=%g, want 80", b.Box.Y)
	}
}

func TestBlock_SiblingsNeverOverlap(t *testing.T) {
	children := []map[string]string{
		{"height": "40px"},
		{"height": "700px"},
		{"margin": "12px"},
		{},
	}
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"})
	for _, props := range children {
		root.AppendChild(buildElement("div", props))
	}
	newTestEngine().Layout(root)

	for i := 1; i < len(root.Children); i++ {
		prev := root.Children[i-1].Box
		cur := root.Children[i].Box
		bottom := prev.Y + prev.Height + prev.MarginBottom
		if cur.Y-cur.MarginTop < bottom {
			t.Errorf("child %d (y=%g) overlaps previous (bottom=%g)", i, cur.Y, bottom)
		}
	}
}

func TestBlock_ChildrenStartAtContentOrigin(t *testing.T) {
	child := buildElement("div", map[string]string{"height": "10px"})
	root := buildElement("div", map[string]string{
		"width": "400px", "height": "300px", "padding": "25px",
	}, child)
	newTestEngine().Layout(root)

	if child.Box.X != 25 || child.Box.Y != 25 {
		t.Errorf("child at (%g,%g), want (25,25)", child.Box.X, child.Box.Y)
	}
	if child.Box.Width != 350 {
		t.Errorf("child width = %g, want 350", child.Box.Width)
	}
}

func TestBlock_OverflowingChildKeepsItsHeight(t *testing.T) {
	tall := buildElement("div", map[string]string{"height": "500px"})
	after := buildElement("div", map[string]string{"height": "50px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "300px"}, tall, after)
	newTestEngine().Layout(root)

	// Children overflow the parent instead of being compressed.
	if tall.Box.Height != 500 {
		t.Errorf("tall child height = %g, want 500", tall.Box.Height)
	}
	if after.Box.Y != 500 {
		t.Errorf("next child at y=%g, want 500", after.Box.Y)
	}
}
