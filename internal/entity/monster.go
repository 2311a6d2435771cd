package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Monster is a placed entity dressed with a definition from monsters.json.
type Monster struct {
	*world.Entity
	Def       *gamedata.MonsterDef
	Name      string
	Symbol    rune
	RoomIndex int // Room the monster was seeded in (-1 if unknown)
	Alive     bool
}

// NewMonster wraps a placed entity. Blocking stays as the placer set it.
func NewMonster(def *gamedata.MonsterDef, body *world.Entity, roomIndex int) *Monster {
	return &Monster{
		Entity:    body,
		Def:       def,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		RoomIndex: roomIndex,
		Alive:     true,
	}
}

// ID returns the monster's type identifier.
func (m *Monster) ID() string {
	return m.Def.ID
}

// Color returns the tcell color for this monster.
func (m *Monster) Color() tcell.Color {
	return m.Def.TCellColor()
}
