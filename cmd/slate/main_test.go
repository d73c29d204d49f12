package main

import (
	"bytes"
	"strings"
	"testing"

	"slate/pkg/layout"
	"slate/pkg/markup"
)

func TestDumpTree_PrintsGeometry(t *testing.T) {
	root, err := markup.ParseHTML(`<html><body style="margin: 0"><div style="width: 100px; height: 50px">hi</div></body></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	layout.NewEngine(layout.ViewportConfig{Width: 800, Height: 600}).Layout(root)

	var buf bytes.Buffer
	cmd := layoutCmd
	cmd.SetOut(&buf)
	dumpTree(cmd, root, 0)

	out := buf.String()
	if !strings.Contains(out, "html x=0.0 y=0.0 w=800.0 h=600.0") {
		t.Errorf("missing root line in output:\n%s", out)
	}
	if !strings.Contains(out, "div x=0.0 y=0.0 w=100.0 h=50.0") {
		t.Errorf("missing div line in output:\n%s", out)
	}
	if !strings.Contains(out, `"hi"`) {
		t.Errorf("missing text in output:\n%s", out)
	}
}

func TestToDump_MirrorsTree(t *testing.T) {
	root, err := markup.ParseHTML(`<html><body><p>text</p></body></html>`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	layout.NewEngine(layout.ViewportConfig{Width: 100, Height: 100}).Layout(root)

	d := toDump(root)
	if d.Tag != "html" || len(d.Children) != 1 {
		t.Fatalf("unexpected root dump: %+v", d)
	}
	p := d.Children[0].Children[0]
	if p.Tag != "p" || p.Text != "text" {
		t.Errorf("unexpected p dump: %+v", p)
	}
}
