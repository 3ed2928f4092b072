package specialtext

import "fmt"

// Env bundles the collaborators a Text component lays out with.
type Env struct {
	Measurer Measurer
	Images   ImageSizer
	Policy   MarkupPolicy
}

// Text is a block of marked-up text with inline images, wrapped to a maximum
// width. Every change to the text, style or width rebuilds the whole layout;
// there is no incremental path. A change whose rebuild fails is not applied.
type Text struct {
	env      Env
	source   string
	style    Style
	maxWidth float64

	tokens []Token
	issues []MarkupIssue
	layout Layout
}

// New scans text and lays it out with style inside maxWidth.
func New(text string, style Style, maxWidth float64, env Env) (*Text, error) {
	if !validMaxWidth(maxWidth) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMaxWidth, maxWidth)
	}
	if env.Measurer == nil {
		return nil, ErrNoMeasurer
	}
	t := &Text{env: env, style: style, maxWidth: maxWidth}
	if err := t.SetText(text); err != nil {
		return nil, err
	}
	return t, nil
}

// SetText replaces the source text, rescans it and rebuilds the layout.
// On error the previous text, tokens and layout all stay in place.
func (t *Text) SetText(value string) error {
	tokens, issues, err := Scanner{Policy: t.env.Policy}.Scan(value)
	if err != nil {
		return err
	}
	l, err := Build(tokens, t.style, t.maxWidth, t.env.Measurer, t.env.Images)
	if err != nil {
		return err
	}
	t.source, t.tokens, t.issues, t.layout = value, tokens, issues, l
	return nil
}

// Text returns the last source text set.
func (t *Text) Text() string {
	return t.source
}

// SetStyle applies patch to the current style. When rebuild is false the
// layout is left stale so a following SetText can rebuild once. A failed
// rebuild leaves the style unchanged.
func (t *Text) SetStyle(patch Patch, rebuild bool) error {
	st := t.style.WithPatch(patch)
	if !rebuild {
		t.style = st
		return nil
	}
	l, err := Build(t.tokens, st, t.maxWidth, t.env.Measurer, t.env.Images)
	if err != nil {
		return err
	}
	t.style, t.layout = st, l
	return nil
}

// Style returns the current style.
func (t *Text) Style() Style {
	return t.style
}

// SetMaxWidth changes the wrap width and rebuilds the layout.
func (t *Text) SetMaxWidth(w float64) error {
	if !validMaxWidth(w) {
		return fmt.Errorf("%w: got %v", ErrInvalidMaxWidth, w)
	}
	l, err := Build(t.tokens, t.style, w, t.env.Measurer, t.env.Images)
	if err != nil {
		return err
	}
	t.maxWidth, t.layout = w, l
	return nil
}

// MaxWidth returns the wrap width.
func (t *Text) MaxWidth() float64 {
	return t.maxWidth
}

// Tokens returns the scanned tokens. The returned slice MUST NOT be mutated.
func (t *Text) Tokens() []Token {
	return t.tokens
}

// Issues returns the stray brackets found in the current text.
func (t *Text) Issues() []MarkupIssue {
	return t.issues
}

// Items returns a copy of the committed items.
func (t *Text) Items() []Item {
	out := make([]Item, len(t.layout.Items))
	copy(out, t.layout.Items)
	return out
}

// Layout returns the committed layout. Its Items slice MUST NOT be mutated.
func (t *Text) Layout() Layout {
	return t.layout
}

// Width returns the width of the widest line.
func (t *Text) Width() float64 {
	return t.layout.Width
}

// Height returns the total height of all lines.
func (t *Text) Height() float64 {
	return t.layout.Height
}
