package layout

import "testing"

func testResolver() *LengthResolver {
	return &LengthResolver{ViewportWidth: 800, ViewportHeight: 600, RootFontSize: 16}
}

func TestResolve_Units(t *testing.T) {
	r := testResolver()

	cases := []struct {
		value     string
		reference float64
		want      float64
	}{
		{"100px", 0, 100},
		{"50%", 400, 200},
		{"2em", 0, 32},
		{"1.5rem", 0, 24},
		{"50vh", 0, 300},
		{"25vw", 0, 200},
		{"42", 0, 42},
		{"  10px ", 0, 10},
		{"auto", 500, 0},
		{"none", 500, 0},
		{"", 500, 0},
		{"banana", 500, 0},
		{"px", 500, 0},
		{"-20px", 0, -20},
	}

	for _, c := range cases {
		if got := r.Resolve(c.value, c.reference); got != c.want {
			t.Errorf("Resolve(%q, %g) = %g, want %g", c.value, c.reference, got, c.want)
		}
	}
}

func TestResolve_RemBeforeEm(t *testing.T) {
	// "3rem" ends in both "rem" and "em"; it must parse as rem, not as
	// "3r" em.
	r := testResolver()
	if got := r.Resolve("3rem", 0); got != 48 {
		t.Errorf("Resolve(3rem) = %g, want 48", got)
	}
}

func TestResolve_ZeroRootFontSizeDefaultsTo16(t *testing.T) {
	r := &LengthResolver{}
	if got := r.Resolve("1em", 0); got != 16 {
		t.Errorf("Resolve(1em) with zero root font = %g, want 16", got)
	}
}

func TestResolveOptional(t *testing.T) {
	r := testResolver()

	if got := r.ResolveOptional("10px", false, 0); got != nil {
		t.Errorf("absent property should resolve to nil, got %g", *got)
	}
	if got := r.ResolveOptional("auto", true, 0); got != nil {
		t.Errorf("auto should resolve to nil, got %g", *got)
	}
	got := r.ResolveOptional("10px", true, 0)
	if got == nil || *got != 10 {
		t.Errorf("ResolveOptional(10px) = %v, want 10", got)
	}
	zero := r.ResolveOptional("0", true, 0)
	if zero == nil || *zero != 0 {
		t.Error("explicit 0 should resolve to a present zero, not nil")
	}
}

func TestExpandShorthand(t *testing.T) {
	r := testResolver()

	cases := []struct {
		value                    string
		top, right, bottom, left float64
	}{
		{"10px", 10, 10, 10, 10},
		{"10px 20px", 10, 20, 10, 20},
		{"10px 20px 30px", 10, 20, 30, 20},
		{"1px 2px 3px 4px", 1, 2, 3, 4},
		{"", 0, 0, 0, 0},
		{"1px 2px 3px 4px 5px", 0, 0, 0, 0},
	}

	for _, c := range cases {
		top, right, bottom, left := r.ExpandShorthand(c.value, 0)
		if top != c.top || right != c.right || bottom != c.bottom || left != c.left {
			t.Errorf("ExpandShorthand(%q) = %g %g %g %g, want %g %g %g %g",
				c.value, top, right, bottom, left, c.top, c.right, c.bottom, c.left)
		}
	}
}

func TestExpandShorthand_PercentReference(t *testing.T) {
	r := testResolver()
	top, right, _, _ := r.ExpandShorthand("10% 25%", 200)
	if top != 20 || right != 50 {
		t.Errorf("percent shorthand = %g %g, want 20 50", top, right)
	}
}
