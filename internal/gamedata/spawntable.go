package gamedata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/dungeonsight/internal/world"
)

// SpawnTable picks monster definitions by spawn weight.
type SpawnTable struct {
	defs       []MonsterDef
	cumulative []int // cumulative[i] is the weight of defs[0..i]
}

// NewSpawnTable builds a table from monster definitions. Every definition must
// block movement, since placed entities are obstacles, and carry a non-negative
// weight; at least one weight must be positive.
func NewSpawnTable(defs []MonsterDef) (*SpawnTable, error) {
	if len(defs) == 0 {
		return nil, errors.New("spawn table: no monster definitions")
	}

	t := &SpawnTable{
		defs:       defs,
		cumulative: make([]int, len(defs)),
	}
	seen := make(map[string]bool, len(defs))
	total := 0
	for i, def := range defs {
		switch {
		case def.ID == "":
			return nil, fmt.Errorf("spawn table: definition %d has no id", i)
		case seen[def.ID]:
			return nil, fmt.Errorf("spawn table: duplicate id %q", def.ID)
		case !def.Blocks:
			return nil, fmt.Errorf("spawn table: monster %q must block", def.ID)
		case def.SpawnWeight < 0:
			return nil, fmt.Errorf("spawn table: monster %q has negative weight %d", def.ID, def.SpawnWeight)
		}
		seen[def.ID] = true
		total += def.SpawnWeight
		t.cumulative[i] = total
	}
	if total == 0 {
		return nil, errors.New("spawn table: all spawn weights are zero")
	}
	return t, nil
}

// LoadSpawnTable builds the table from the embedded monsters.json.
func LoadSpawnTable() (*SpawnTable, error) {
	defs, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	return NewSpawnTable(defs)
}

// Pick draws one definition. It consumes exactly one rng.Intn call.
func (t *SpawnTable) Pick(rng world.RNG) *MonsterDef {
	roll := rng.Intn(t.cumulative[len(t.cumulative)-1])
	i := sort.SearchInts(t.cumulative, roll+1)
	return &t.defs[i]
}
