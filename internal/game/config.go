package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samdwyer/dungeonsight/internal/fov"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed         = "DUNGEONSIGHT_SEED"
	EnvWidth        = "DUNGEONSIGHT_WIDTH"
	EnvHeight       = "DUNGEONSIGHT_HEIGHT"
	EnvMaxRooms     = "DUNGEONSIGHT_MAX_ROOMS"
	EnvRoomMin      = "DUNGEONSIGHT_ROOM_MIN"
	EnvRoomMax      = "DUNGEONSIGHT_ROOM_MAX"
	EnvRoomMonsters = "DUNGEONSIGHT_ROOM_MONSTERS"
	EnvFOVRadius    = "DUNGEONSIGHT_FOV_RADIUS"
	EnvFOVAlgorithm = "DUNGEONSIGHT_FOV_ALGORITHM"
)

// Config holds session configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Dungeon         world.Params
	MaxRoomMonsters int

	FOVRadius    int // 0 means unlimited
	LightWalls   bool
	FOVAlgorithm fov.Algorithm
}

// DefaultConfig returns the configuration described by the embedded dungeon.json.
func DefaultConfig() (Config, error) {
	defaults, err := gamedata.LoadDungeonDefaults()
	if err != nil {
		return Config{}, fmt.Errorf("load dungeon defaults: %w", err)
	}
	algorithm, err := fov.ParseAlgorithm(defaults.FOV.Algorithm)
	if err != nil {
		return Config{}, fmt.Errorf("load dungeon defaults: %w", err)
	}
	return Config{
		Dungeon:         defaults.Params,
		MaxRoomMonsters: defaults.MaxRoomMonsters,
		FOVRadius:       defaults.FOV.Radius,
		LightWalls:      defaults.FOV.LightWalls,
		FOVAlgorithm:    algorithm,
	}, nil
}

// ApplyEnv overrides fields from environment variables. lookup is normally
// os.LookupEnv. Every malformed variable is reported.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = seed
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.Dungeon.Width},
		{EnvHeight, &c.Dungeon.Height},
		{EnvMaxRooms, &c.Dungeon.MaxRooms},
		{EnvRoomMin, &c.Dungeon.RoomMinSize},
		{EnvRoomMax, &c.Dungeon.RoomMaxSize},
		{EnvRoomMonsters, &c.MaxRoomMonsters},
		{EnvFOVRadius, &c.FOVRadius},
	}
	for _, field := range ints {
		v, ok := lookup(field.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.key, err))
			continue
		}
		*field.dst = n
	}

	if v, ok := lookup(EnvFOVAlgorithm); ok {
		algorithm, err := fov.ParseAlgorithm(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFOVAlgorithm, err))
		} else {
			c.FOVAlgorithm = algorithm
		}
	}

	return errors.Join(errs...)
}

// Validate checks the configuration before a session is built.
func (c Config) Validate() error {
	var errs []error
	if err := c.Dungeon.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxRoomMonsters < 0 {
		errs = append(errs, fmt.Errorf("maxRoomMonsters %d must not be negative", c.MaxRoomMonsters))
	}
	if c.FOVRadius < 0 {
		errs = append(errs, fmt.Errorf("fov radius %d must not be negative", c.FOVRadius))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
