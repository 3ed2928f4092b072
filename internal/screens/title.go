package screens

import (
	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/navigation"
	"github.com/phanxgames/showcase/specialtext"
)

// TitleID identifies the title screen.
const TitleID = "title"

const introText = "This showcase runs four small demos on one scene graph. " +
	"Cards moves 144 cards from one stack to another along an arc, one card " +
	"every second. Text lays out words and inline images together and " +
	"rebuilds with a random font, size and text every two seconds. Fire is " +
	"a ten particle flame that follows a moving emitter. Use the menu above " +
	"to switch between them."

// Title shows a heading and a wrapped intro paragraph.
type Title struct {
	base
	intro *showcase.SpecialText
}

// TitleSpec describes the title screen.
func TitleSpec(env *Env) navigation.Spec {
	return navigation.Spec{ID: TitleID, New: func() navigation.Screen { return NewTitle(env) }}
}

// NewTitle builds the title screen.
func NewTitle(env *Env) *Title {
	s := &Title{base: newBase(env, TitleID, "TitleScreen")}
	style := specialtext.DefaultStyle().WithPatch(
		specialtext.FontFamily(BodyFamily),
		specialtext.FontSize(18),
		specialtext.Fill(specialtext.Hex(0xffffff)),
		specialtext.Stroke(specialtext.Hex(0x000000), 2),
	)
	intro, err := showcase.NewSpecialText("intro", introText, style, env.DesignWidth-50, env.Fonts, env.Assets)
	if err != nil {
		env.logf("title: %v", err)
		return s
	}
	s.intro = intro
	s.node.AddChild(intro.Node())
	return s
}

// Show fades the screen in.
func (s *Title) Show() {
	s.fadeIn()
}

// Hide stops the fade.
func (s *Title) Hide() {
	s.anim.Kill(s.node)
}

// Resize centres the heading and the intro paragraph.
func (s *Title) Resize(w, _ float64) {
	s.resizeTitle(w)
	if s.intro != nil {
		s.intro.Node().SetPosition((w-s.intro.Width())/2, 120)
	}
}
