package specialtext

import (
	"fmt"
	"strings"
)

// MarkupPolicy selects how the scanner treats brackets that do not form a
// complete [name] reference.
type MarkupPolicy uint8

const (
	// MarkupLiteral keeps stray brackets as literal text and records an issue.
	MarkupLiteral MarkupPolicy = iota
	// MarkupDrop silently discards stray brackets.
	MarkupDrop
	// MarkupStrict fails the scan with ErrMalformedMarkup.
	MarkupStrict
)

// MarkupIssue records one stray bracket found while scanning.
type MarkupIssue struct {
	Offset int  // byte offset in the source text
	Char   byte // '[' or ']'
}

func (i MarkupIssue) String() string {
	if i.Char == '[' {
		return fmt.Sprintf("unterminated '[' at offset %d", i.Offset)
	}
	return fmt.Sprintf("stray ']' at offset %d", i.Offset)
}

// scanState is the scanner's current state.
type scanState uint8

const (
	stateText scanState = iota
	stateBracket
)

// Scanner splits source text into tokens.
type Scanner struct {
	Policy MarkupPolicy
}

// Tokenize scans src with MarkupLiteral. It never fails and is lossless.
func Tokenize(src string) []Token {
	tokens, _, _ := Scanner{Policy: MarkupLiteral}.Scan(src)
	return tokens
}

// Scan splits src into text runs, image references and newlines. A bracketed
// reference never spans a newline and is closed by the first ']' after its
// '['. Stray brackets are handled according to the scanner's Policy and are
// reported as issues under MarkupLiteral and MarkupDrop.
func (sc Scanner) Scan(src string) ([]Token, []MarkupIssue, error) {
	var (
		tokens  []Token
		issues  []MarkupIssue
		text    strings.Builder
		state   = stateText
		open    int // offset of the '[' that started the current bracket
		nameBeg int
	)

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, TextRun(text.String()))
			text.Reset()
		}
	}

	// stray applies the policy to one unmatched bracket.
	stray := func(off int, c byte) error {
		switch sc.Policy {
		case MarkupStrict:
			return fmt.Errorf("%w: %s", ErrMalformedMarkup, MarkupIssue{Offset: off, Char: c})
		case MarkupDrop:
		default:
			text.WriteByte(c)
		}
		issues = append(issues, MarkupIssue{Offset: off, Char: c})
		return nil
	}

	// unterminated falls back from an open bracket: the '[' (and any further
	// '[' inside the would-be name) is stray, everything else is plain text.
	unterminated := func(end int) error {
		for j := open; j < end; j++ {
			c := src[j]
			if c == '[' {
				if err := stray(j, c); err != nil {
					return err
				}
				continue
			}
			text.WriteByte(c)
		}
		return nil
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch state {
		case stateText:
			switch c {
			case '[':
				state = stateBracket
				open = i
				nameBeg = i + 1
			case ']':
				if err := stray(i, c); err != nil {
					return nil, nil, err
				}
			case '\n':
				flush()
				tokens = append(tokens, NewLine())
			default:
				text.WriteByte(c)
			}
		case stateBracket:
			switch c {
			case ']':
				flush()
				tokens = append(tokens, ImageRef(src[nameBeg:i]))
				state = stateText
			case '\n':
				if err := unterminated(i); err != nil {
					return nil, nil, err
				}
				flush()
				tokens = append(tokens, NewLine())
				state = stateText
			}
		}
	}

	if state == stateBracket {
		if err := unterminated(len(src)); err != nil {
			return nil, nil, err
		}
	}
	flush()
	return tokens, issues, nil
}
