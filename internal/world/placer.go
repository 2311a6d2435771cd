package world

const (
	// DefaultMaxRoomMonsters is the default upper bound of entities seeded per room.
	DefaultMaxRoomMonsters = 3

	// defaultPlacementAttempts bounds the position resampling for one entity.
	defaultPlacementAttempts = 100
)

// Placer seeds blocking entities on free interior tiles of a room.
type Placer struct {
	MaxPerRoom  int // Entity count is drawn uniformly from [0, MaxPerRoom]
	MaxAttempts int // Candidate positions tried per entity; 0 means 100
}

// NewPlacer creates a placer seeding at most maxPerRoom entities per room.
func NewPlacer(maxPerRoom int) *Placer {
	return &Placer{MaxPerRoom: maxPerRoom, MaxAttempts: defaultPlacementAttempts}
}

// Place returns new blocking entities inside the interior of room. Candidates are
// rejected when the tile is blocked or a blocking entity in existing (or one placed
// earlier in this call) occupies it. An entity whose attempts run out is skipped.
func (p *Placer) Place(room Rect, grid *TileGrid, existing []*Entity, rng RNG) []*Entity {
	if p == nil || p.MaxPerRoom < 0 {
		return nil
	}
	innerW := room.X2 - room.X1 - 1
	innerH := room.Y2 - room.Y1 - 1
	if innerW <= 0 || innerH <= 0 {
		return nil
	}

	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = defaultPlacementAttempts
	}

	count := rng.Intn(p.MaxPerRoom + 1)
	placed := make([]*Entity, 0, count)

	for i := 0; i < count; i++ {
		for try := 0; try < attempts; try++ {
			x := room.X1 + 1 + rng.Intn(innerW)
			y := room.Y1 + 1 + rng.Intn(innerH)
			if grid.At(x, y).Blocked ||
				BlockingAt(existing, x, y) != nil ||
				BlockingAt(placed, x, y) != nil {
				continue
			}
			placed = append(placed, &Entity{X: x, Y: y, Blocks: true})
			break
		}
	}

	return placed
}
