package specialtext

import "strings"

// TokenKind distinguishes the three token types produced by the scanner.
type TokenKind uint8

const (
	TokenText    TokenKind = iota // run of plain characters
	TokenImage                    // [name] reference to an external image
	TokenNewLine                  // explicit line break
)

// String returns a short name for the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenImage:
		return "image"
	case TokenNewLine:
		return "newline"
	default:
		return "unknown"
	}
}

// Token is one scanned element of the source text. Value holds the run for
// text tokens and the bracket contents for image tokens; it is empty for
// newlines.
type Token struct {
	Kind  TokenKind
	Value string
}

// TextRun returns a text token.
func TextRun(content string) Token { return Token{Kind: TokenText, Value: content} }

// ImageRef returns an image reference token.
func ImageRef(name string) Token { return Token{Kind: TokenImage, Value: name} }

// NewLine returns a line break token.
func NewLine() Token { return Token{Kind: TokenNewLine} }

// Literal returns the source form of the token.
func (t Token) Literal() string {
	switch t.Kind {
	case TokenImage:
		return "[" + t.Value + "]"
	case TokenNewLine:
		return "\n"
	default:
		return t.Value
	}
}

// Join concatenates the literal forms of tokens. For tokens scanned with
// MarkupLiteral, Join(Tokenize(s)) == s.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Literal())
	}
	return b.String()
}
