package style

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// ParseDeclarations tokenizes a CSS declaration list ("width: 50%; gap: 10px")
// into a property map. Tokenizing rather than splitting on ';'/':' keeps
// quoted strings and function arguments intact, which matters for values
// like grid-template-areas and repeat(2, 1fr). Malformed fragments are
// skipped; parsing never fails.
func ParseDeclarations(input string) map[string]string {
	decls := make(map[string]string)
	s := scanner.New(input)

	var property string
	var value strings.Builder
	inValue := false
	depth := 0

	flush := func() {
		if property != "" {
			v := strings.TrimSpace(value.String())
			if v != "" {
				decls[property] = v
			}
		}
		property = ""
		value.Reset()
		inValue = false
		depth = 0
	}

	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			flush()
			return decls
		}
		switch {
		case tok.Type == scanner.TokenComment:
			// ignored
		case !inValue:
			switch tok.Type {
			case scanner.TokenIdent:
				property = strings.ToLower(strings.TrimSpace(tok.Value))
			case scanner.TokenChar:
				switch tok.Value {
				case ":":
					inValue = property != ""
				case ";":
					property = ""
				}
			}
		default:
			switch tok.Type {
			case scanner.TokenS:
				value.WriteString(" ")
			case scanner.TokenFunction:
				depth++
				value.WriteString(tok.Value)
			case scanner.TokenChar:
				switch tok.Value {
				case "(":
					depth++
					value.WriteString(tok.Value)
				case ")":
					if depth > 0 {
						depth--
					}
					value.WriteString(tok.Value)
				case ";":
					if depth == 0 {
						flush()
					} else {
						value.WriteString(tok.Value)
					}
				default:
					value.WriteString(tok.Value)
				}
			default:
				value.WriteString(tok.Value)
			}
		}
	}
}
