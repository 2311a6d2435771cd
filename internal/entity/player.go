// Package entity gives world entities their names, glyphs and colours.
package entity

import "github.com/samdwyer/dungeonsight/internal/world"

// Player is the entity the session moves. It blocks like any other actor.
type Player struct {
	*world.Entity
	Symbol rune
}

// NewPlayer creates the player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		Entity: &world.Entity{X: x, Y: y, Blocks: true},
		Symbol: '@',
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.SetPosition(p.X+dx, p.Y+dy)
}
