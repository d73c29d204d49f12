package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDisplay(t *testing.T) {
	assert.Equal(t, DisplayBlock, DefaultDisplay("div"))
	assert.Equal(t, DisplayBlock, DefaultDisplay("customtag"))
	assert.Equal(t, DisplayInline, DefaultDisplay("span"))
	assert.Equal(t, DisplayInline, DefaultDisplay("strong"))
	assert.Equal(t, DisplayInlineBlock, DefaultDisplay("button"))
	assert.Equal(t, DisplayInlineBlock, DefaultDisplay("img"))
}

func TestDefaultStyles_HeadingFontSizes(t *testing.T) {
	assert.Equal(t, "32px", DefaultStyles("h1")["font-size"])
	assert.Equal(t, "24px", DefaultStyles("h2")["font-size"])
	assert.Equal(t, "16px", DefaultStyles("p")["font-size"])
	assert.Equal(t, "8px", DefaultStyles("body")["margin"])
	assert.Equal(t, "5px 10px", DefaultStyles("button")["padding"])
}

func TestCompute_AuthorDeclarationsWin(t *testing.T) {
	s := Compute("h1", map[string]string{"font-size": "40px", "color": "red"})
	assert.Equal(t, "40px", s.GetOr("font-size", ""))
	assert.Equal(t, "red", s.GetOr("color", ""))
}

func TestCompute_NilDeclarations(t *testing.T) {
	s := Compute("button", nil)
	assert.Equal(t, "5px 10px", s.GetOr("padding", ""))
}
