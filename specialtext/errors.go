package specialtext

import "errors"

var (
	// ErrMalformedMarkup reports a stray ']' or a '[' that is never closed.
	// Only returned when scanning with MarkupStrict.
	ErrMalformedMarkup = errors.New("specialtext: malformed markup")

	// ErrUnresolvedAsset reports an image reference the ImageSizer cannot
	// resolve. Layout never falls back to a zero size.
	ErrUnresolvedAsset = errors.New("specialtext: unresolved asset")

	// ErrInvalidMaxWidth reports a maximum width that is not a positive number.
	ErrInvalidMaxWidth = errors.New("specialtext: max width must be positive")

	// ErrNoMeasurer reports a component built without a text Measurer.
	ErrNoMeasurer = errors.New("specialtext: no text measurer")
)
