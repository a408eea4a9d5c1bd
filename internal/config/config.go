package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// GameConfig tunes the simulation. Values of zero fall back to defaults so a
// partial config file stays usable.
type GameConfig struct {
	// MaxPlayers caps how many eligible players enter one simulation.
	MaxPlayers int `json:"max_players"`
	// MaxRounds caps the round loop before the timed-out ending fires.
	MaxRounds int `json:"max_rounds"`
	// TurnDelaySeconds is the pacing delay before each announcement.
	TurnDelaySeconds int `json:"turn_delay_seconds"`
}

const (
	defaultMaxPlayers       = 500
	defaultMaxRounds        = 100
	defaultTurnDelaySeconds = 5
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// MaxPlayers returns the configured roster cap, or the default.
func MaxPlayers() int {
	if cfg == nil || cfg.MaxPlayers <= 0 {
		return defaultMaxPlayers
	}
	return cfg.MaxPlayers
}

// MaxRounds returns the configured round cap, or the default.
func MaxRounds() int {
	if cfg == nil || cfg.MaxRounds <= 0 {
		return defaultMaxRounds
	}
	return cfg.MaxRounds
}

// TurnDelay returns the pacing delay applied before each announcement.
func TurnDelay() time.Duration {
	if cfg == nil || cfg.TurnDelaySeconds < 0 {
		return defaultTurnDelaySeconds * time.Second
	}
	return time.Duration(cfg.TurnDelaySeconds) * time.Second
}
