// Package showcase is the retained-mode 2D toolkit behind the SpecialText
// showcase, built on [Ebitengine].
//
// It provides a scene graph with a transform hierarchy, render command
// sorting, pointer input, TTF text, asset bundles and atlases, and tweens.
// The markup and layout engine itself lives in the specialtext subpackage;
// [SpecialText] turns its layout into scene nodes.
//
// # Quick start
//
// Implement [ebiten.Game] and forward to [Scene.Update] and [Scene.Draw]:
//
//	type Game struct{ scene *showcase.Scene }
//
//	func (g *Game) Update() error              { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha.
//
//	ui := showcase.NewContainer("ui")
//	scene.Root().AddChild(ui)
//
//	box := showcase.NewRect("box", 80, 40, showcase.RGB(0x3366ff))
//	box.SetPosition(100, 50)
//	ui.AddChild(box)
//
// # Rich text
//
// Load fonts into a [FontBook], images into an [AssetStore], then build a
// [SpecialText]:
//
//	fonts := showcase.NewFontBook()
//	showcase.LoadGoFonts(fonts)
//	st, err := showcase.NewSpecialText("intro",
//		"Hello [img1] world", specialtext.DefaultStyle(), 400, fonts, assets)
//
// # Animation
//
// An [Animator] drives [TweenGroup], [Sequence] and [Timer] values. Tweens
// use [gween] easing functions.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package showcase
