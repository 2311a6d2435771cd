package gamedata

import "github.com/samdwyer/dungeonsight/internal/world"

// FOVDefaults configures visibility.
type FOVDefaults struct {
	Radius     int    `json:"radius"`     // 0 means unlimited
	LightWalls bool   `json:"lightWalls"` // Walls at the edge of sight are lit
	Algorithm  string `json:"algorithm"`  // "shadowcast" or "ray"
}

// DungeonDefaults is the structure of dungeon.json.
type DungeonDefaults struct {
	world.Params
	MaxRoomMonsters int         `json:"maxRoomMonsters"`
	FOV             FOVDefaults `json:"fov"`
}

// LoadDungeonDefaults loads generation defaults from the embedded dungeon.json.
func LoadDungeonDefaults() (DungeonDefaults, error) {
	return Load[DungeonDefaults]("dungeon.json")
}
