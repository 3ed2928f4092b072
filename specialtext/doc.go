// Package specialtext lays out marked-up text with inline images.
//
// Source text may contain image references written as [name]. The text is
// scanned into tokens, then laid out left to right, top to bottom inside a
// fixed maximum width with greedy word wrapping. Every line is bottom
// aligned: items shorter than the tallest item on their line hang from the
// same bottom edge.
//
//	txt, err := specialtext.New("Hello [img1] world", style, 500, specialtext.Env{
//		Measurer: fonts,
//		Images:   assets,
//	})
//	for _, it := range txt.Items() {
//		// place it.Content at (it.X, it.Top())
//	}
//
// The package does no rendering. Text metrics and image sizes come from the
// [Measurer] and [ImageSizer] collaborators; turning items into drawable nodes
// is left to the caller.
package specialtext
