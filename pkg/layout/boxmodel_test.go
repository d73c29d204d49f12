package layout

import "testing"

func TestBoxModel_ShorthandThenLonghandOverride(t *testing.T) {
	root := buildElement("div", map[string]string{
		"margin":      "10px 20px",
		"margin-left": "5px",
		"padding":     "8px",
		"padding-top": "2px",
		"width":       "100px",
		"height":      "100px",
	})
	newTestEngine().Layout(root)

	box := root.Box
	if box.MarginTop != 10 || box.MarginRight != 20 || box.MarginBottom != 10 || box.MarginLeft != 5 {
		t.Errorf("margins = %g %g %g %g, want 10 20 10 5",
			box.MarginTop, box.MarginRight, box.MarginBottom, box.MarginLeft)
	}
	if box.PaddingTop != 2 || box.PaddingRight != 8 || box.PaddingBottom != 8 || box.PaddingLeft != 8 {
		t.Errorf("paddings = %g %g %g %g, want 2 8 8 8",
			box.PaddingTop, box.PaddingRight, box.PaddingBottom, box.PaddingLeft)
	}
}

func TestBoxModel_ChildPercentWidth(t *testing.T) {
	child := buildElement("div", map[string]string{"width": "50%", "height": "20px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "200px"}, child)
	newTestEngine().Layout(root)

	if child.Box.Width != 200 {
		t.Errorf("child width = %g, want 200", child.Box.Width)
	}
}

func TestBoxModel_PercentAgainstContentBox(t *testing.T) {
	// The parent's padding shrinks the content box percentages resolve
	// against: 50% of (400 - 2*20).
	child := buildElement("div", map[string]string{"width": "50%", "height": "20px"})
	root := buildElement("div", map[string]string{
		"width": "400px", "height": "200px", "padding": "20px",
	}, child)
	newTestEngine().Layout(root)

	if child.Box.Width != 180 {
		t.Errorf("child width = %g, want 180", child.Box.Width)
	}
	if child.Box.X != 20 || child.Box.Y != 20 {
		t.Errorf("child origin = (%g,%g), want (20,20)", child.Box.X, child.Box.Y)
	}
}

func TestBoxModel_MaxWidthClamps(t *testing.T) {
	root := buildElement("div", map[string]string{
		"width": "500px", "max-width": "300px", "height": "50px",
	})
	newTestEngine().Layout(root)

	if root.Box.Width != 300 {
		t.Errorf("width = %g, want 300", root.Box.Width)
	}
}

func TestBoxModel_MinWinsOverMax(t *testing.T) {
	root := buildElement("div", map[string]string{
		"width": "500px", "max-width": "300px", "min-width": "350px", "height": "50px",
	})
	newTestEngine().Layout(root)

	if root.Box.Width != 350 {
		t.Errorf("width = %g, want 350", root.Box.Width)
	}
}

func TestBoxModel_MinHeightRaisesAutoHeight(t *testing.T) {
	child := buildElement("div", map[string]string{"min-height": "120px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "400px"}, child)
	newTestEngine().Layout(root)

	if child.Box.Height != 120 {
		t.Errorf("height = %g, want 120", child.Box.Height)
	}
}

func TestBoxModel_AutoWidthFillsContainerMinusMargins(t *testing.T) {
	child := buildElement("div", map[string]string{"margin": "0 25px", "height": "10px"})
	root := buildElement("div", map[string]string{"width": "400px", "height": "200px"}, child)
	newTestEngine().Layout(root)

	if child.Box.Width != 350 {
		t.Errorf("width = %g, want 350", child.Box.Width)
	}
	if child.Box.X != 25 {
		t.Errorf("x = %g, want 25", child.Box.X)
	}
}

func TestBoxModel_FlexBasisZeroStringIsExactZero(t *testing.T) {
	root := buildElement("div", map[string]string{"flex-basis": "0", "width": "10px", "height": "10px"})
	newTestEngine().Layout(root)

	if root.Box.FlexBasis == nil {
		t.Fatal("flex-basis 0 should not be treated as auto")
	}
	if *root.Box.FlexBasis != 0 {
		t.Errorf("flex-basis = %g, want 0", *root.Box.FlexBasis)
	}
}

func TestBoxModel_FlexBasisAutoIsNil(t *testing.T) {
	root := buildElement("div", map[string]string{"flex-basis": "auto", "width": "10px", "height": "10px"})
	newTestEngine().Layout(root)

	if root.Box.FlexBasis != nil {
		t.Errorf("flex-basis auto should be nil, got %g", *root.Box.FlexBasis)
	}
}

func TestBoxModel_BorderWidthResolved(t *testing.T) {
	root := buildElement("div", map[string]string{"border-width": "3px", "width": "10px", "height": "10px"})
	newTestEngine().Layout(root)

	if root.Box.BorderWidth != 3 {
		t.Errorf("border width = %g, want 3", root.Box.BorderWidth)
	}
}
