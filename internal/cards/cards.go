// Package cards holds playing-card sprites and the stacks they sit on.
package cards

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/showcase"
)

// Suits in deck order.
var Suits = [...]string{"clubs", "diamonds", "hearts", "spades"}

// RanksPerSuit is the number of cards in one suit.
const RanksPerSuit = 13

// CardName returns the asset name of the i-th card, cycling through the
// deck so any number of cards can be named.
func CardName(i int) string {
	suit := Suits[(i/RanksPerSuit)%len(Suits)]
	return fmt.Sprintf("card-%s-%d", suit, i%RanksPerSuit+1)
}

// Card is a sprite anchored at its centre.
type Card struct {
	node  *showcase.Node
	stack *Stack
}

// NewCard creates a card showing face.
func NewCard(name string, face *ebiten.Image) *Card {
	n := showcase.NewSprite(name, face)
	n.SetAnchor(0.5, 0.5)
	return &Card{node: n}
}

// Node returns the card's sprite.
func (c *Card) Node() *showcase.Node { return c.node }

// Stack returns the stack the card was last pushed onto, or nil.
func (c *Card) Stack() *Stack { return c.stack }

// Stack is a pile of cards. Each card sits Spacing pixels above the one
// below it.
type Stack struct {
	Spacing float64

	node  *showcase.Node
	cards []*Card
}

// NewStack creates an empty stack positioned at (x, y) in its parent.
func NewStack(name string, x, y float64) *Stack {
	n := showcase.NewContainer(name)
	n.SetPosition(x, y)
	return &Stack{Spacing: 1, node: n}
}

// Node returns the stack's container.
func (s *Stack) Node() *showcase.Node { return s.node }

// Len returns the number of cards on the stack.
func (s *Stack) Len() int { return len(s.cards) }

// NextPosition returns where a new top card rests, in stack space.
func (s *Stack) NextPosition() (x, y float64) {
	return 0, -float64(len(s.cards)) * s.Spacing
}

// Push records card as the new top card. It does not move the card; use
// PlaceOnTop for the resting position or animate toward NextPosition.
func (s *Stack) Push(card *Card) {
	s.cards = append(s.cards, card)
	card.stack = s
}

// PlaceOnTop reparents card into the stack at the resting position for the
// current card count.
func (s *Stack) PlaceOnTop(card *Card) {
	s.node.AddChild(card.node)
	card.node.SetPosition(s.NextPosition())
}

// PopTop removes the top card and moves it into the stack's parent,
// keeping its position on screen. It returns nil when the stack is empty.
func (s *Stack) PopTop() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	card := s.cards[len(s.cards)-1]
	s.cards[len(s.cards)-1] = nil
	s.cards = s.cards[:len(s.cards)-1]
	card.stack = nil

	parent := s.node.Parent
	if parent == nil {
		card.node.RemoveFromParent()
		return card
	}
	x, y := card.node.X, card.node.Y
	if card.node.Parent != nil {
		x, y = card.node.Parent.LocalToNode(parent, x, y)
	}
	parent.AddChild(card.node)
	card.node.SetPosition(x, y)
	return card
}
