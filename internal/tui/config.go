package tui

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/store"
)

// Avatars is the fixed set of table avatars the player can cycle through
var Avatars = []string{"♠", "♥", "♦", "♣"}

// Config holds player preferences loaded from the HCL config file.
// Anything the save-file also tracks (theme, avatar) is seeded from here
// only on a fresh profile; after that the save-file wins.
type Config struct {
	Theme      string `hcl:"theme,optional"`       // "dark", "light" or "" to follow the terminal
	Avatar     string `hcl:"avatar,optional"`      // one of Avatars
	NoSound    bool   `hcl:"no_sound,optional"`    // disable the terminal bell on sound cues
	DefaultBet int    `hcl:"default_bet,optional"` // pre-filled bet amount
	DataFile   string `hcl:"data_file,optional"`   // save-file path
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Avatar:     Avatars[0],
		DefaultBet: 100,
		DataFile:   store.DefaultPath(),
	}
}

// LoadConfig loads preferences from an HCL file, falling back to defaults
// for a missing file or missing fields.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if config.Theme != "" && config.Theme != "dark" && config.Theme != "light" {
		return nil, fmt.Errorf("invalid theme %q: must be dark or light", config.Theme)
	}
	if config.Avatar == "" || !slices.Contains(Avatars, config.Avatar) {
		config.Avatar = Avatars[0]
	}
	if config.DefaultBet <= 0 {
		config.DefaultBet = 100
	}
	if config.DataFile == "" {
		config.DataFile = store.DefaultPath()
	}
	return &config, nil
}
