package screens

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/showcase"
	"github.com/phanxgames/showcase/internal/art"
	"github.com/phanxgames/showcase/internal/cards"
	"github.com/phanxgames/showcase/internal/navigation"
)

// CardsID identifies the card screen.
const CardsID = "cards"

const (
	totalCards   = 144
	moveInterval = 1.0 // seconds between card moves
	moveDuration = 2.0 // seconds per card flight
	archHeight   = 100
	stackMargin  = 300
)

// Cards moves cards one at a time from a left stack to a right stack.
type Cards struct {
	base
	container   *showcase.Node
	left, right *cards.Stack
	deck        []*cards.Card
	mover       *showcase.Timer
}

// CardsSpec describes the card screen.
func CardsSpec(env *Env) navigation.Spec {
	return navigation.Spec{
		ID:      CardsID,
		Bundles: []string{art.CardBundle},
		New:     func() navigation.Screen { return NewCards(env) },
	}
}

// NewCards builds the card screen. Cards are created on Show.
func NewCards(env *Env) *Cards {
	s := &Cards{base: newBase(env, CardsID, "Cards")}
	s.container = showcase.NewContainer("cards-container")
	s.node.AddChild(s.container)
	return s
}

// Show deals every card onto the left stack, fades the screen in as one
// bitmap and then starts moving cards.
func (s *Cards) Show() {
	w, h := s.env.DesignWidth, s.env.DesignHeight
	s.left = cards.NewStack("left", stackMargin, h-80)
	s.right = cards.NewStack("right", w-stackMargin, h-80)
	s.container.AddChild(s.left.Node())
	s.container.AddChild(s.right.Node())

	s.deck = make([]*cards.Card, 0, totalCards)
	for i := range totalCards {
		name := cards.CardName(i)
		face, err := s.env.Assets.Image(name)
		if err != nil {
			s.env.logf("cards: %v", err)
		}
		c := cards.NewCard(name, face)
		s.container.AddChild(c.Node())
		s.deck = append(s.deck, c)
	}
	for _, c := range s.deck {
		s.left.Push(c)
		s.left.PlaceOnTop(c)
	}

	// Fade as one bitmap so overlapping cards do not show through each other.
	s.node.SetCacheAsBitmap(true)
	fade := s.fadeIn()
	fade.OnComplete = func() {
		s.node.SetCacheAsBitmap(false)
		s.mover = s.anim.Every(moveInterval, s.moveCard)
	}
}

// moveCard flies the left stack's top card to the right stack in an arc.
// PopTop leaves the card on top of the container for the flight.
func (s *Cards) moveCard() {
	card := s.left.PopTop()
	if card == nil {
		s.mover.Stop()
		return
	}
	s.right.Push(card)
	n := card.Node()

	nx, ny := s.right.NextPosition()
	tx := s.right.Node().X + nx
	ty := s.right.Node().Y + ny

	// The arc peaks above whichever end is higher.
	s.anim.Sequence(
		showcase.TweenY(n, min(n.Y, ty)-archHeight, moveDuration/2, ease.OutSine),
		showcase.TweenY(n, ty, moveDuration/2, ease.InSine),
	)
	s.anim.Add(showcase.TweenX(n, tx, moveDuration, ease.InOutSine))
}

// Hide stops all motion and removes the cards.
func (s *Cards) Hide() {
	if s.mover != nil {
		s.mover.Stop()
		s.mover = nil
	}
	s.anim.Clear()
	for _, c := range s.deck {
		c.Node().Dispose()
	}
	s.deck = nil
	if s.left != nil {
		s.left.Node().Dispose()
		s.right.Node().Dispose()
		s.left, s.right = nil, nil
	}
	s.node.SetCacheAsBitmap(false)
}

// Resize centres the design-width card area.
func (s *Cards) Resize(w, _ float64) {
	s.resizeTitle(w)
	s.container.SetPosition(w/2-s.env.DesignWidth/2, 0)
}

// Stacks returns the left and right stacks while the screen is shown.
func (s *Cards) Stacks() (left, right *cards.Stack) {
	return s.left, s.right
}
