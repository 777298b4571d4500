package rowan

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest describes a game project: window defaults, entry script, and
// store metadata. It lives in game.yaml at the game root.
type Manifest struct {
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Tags             []string `yaml:"tags"`
	MainScriptPath   string   `yaml:"main_script_path"`
	LogoPath         string   `yaml:"logo_path"`
	LoadingAnimation string   `yaml:"loading_animation"`
	ScreenWidth      int      `yaml:"screen_width"`
	ScreenHeight     int      `yaml:"screen_height"`
}

// DefaultManifest returns the manifest used when a project ships none.
func DefaultManifest() *Manifest {
	return &Manifest{
		Title:            "Untitled Game",
		MainScriptPath:   "scripts/game.luau",
		LogoPath:         "assets/logo.png",
		LoadingAnimation: "default",
		ScreenWidth:      1200,
		ScreenHeight:     800,
	}
}

// ParseManifest parses YAML manifest data. Missing keys take their default
// values, so a minimal manifest with just a title is valid.
func ParseManifest(data []byte) (*Manifest, error) {
	m := DefaultManifest()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Title == "" {
		m.Title = "Untitled Game"
	}
	if m.MainScriptPath == "" {
		m.MainScriptPath = "scripts/game.luau"
	}
	if m.ScreenWidth <= 0 {
		m.ScreenWidth = 1200
	}
	if m.ScreenHeight <= 0 {
		m.ScreenHeight = 800
	}
	return m, nil
}
