package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig carries table pacing and round settings. All durations are in
// milliseconds; zero values fall back to the defaults below.
type GameConfig struct {
	TotalRounds      int `json:"total_rounds"`
	BidBotDelayMs    int `json:"bid_bot_delay_ms"`
	BidVisibleMs     int `json:"bid_visible_ms"`
	PlayBotDelayMs   int `json:"play_bot_delay_ms"`
	PromptVisibleMs  int `json:"prompt_visible_ms"`
	TrickAnimationMs int `json:"trick_animation_ms"`
}

// Defaults mirror the original table pacing.
var defaults = GameConfig{
	TotalRounds:      3,
	BidBotDelayMs:    900,
	BidVisibleMs:     900,
	PlayBotDelayMs:   600,
	PromptVisibleMs:  1200,
	TrickAnimationMs: 1100,
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. It is safe
// to call more than once; only the first call reads the file.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c := defaults
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or the defaults when no
// config file was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return defaults
	}
	out := defaults
	if cfg.TotalRounds > 0 {
		out.TotalRounds = cfg.TotalRounds
	}
	if cfg.BidBotDelayMs > 0 {
		out.BidBotDelayMs = cfg.BidBotDelayMs
	}
	if cfg.BidVisibleMs > 0 {
		out.BidVisibleMs = cfg.BidVisibleMs
	}
	if cfg.PlayBotDelayMs > 0 {
		out.PlayBotDelayMs = cfg.PlayBotDelayMs
	}
	if cfg.PromptVisibleMs > 0 {
		out.PromptVisibleMs = cfg.PromptVisibleMs
	}
	if cfg.TrickAnimationMs > 0 {
		out.TrickAnimationMs = cfg.TrickAnimationMs
	}
	return out
}
