package main

import (
	"time"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/store"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd starts the interactive terminal table
type PlayCmd struct {
	Config string `short:"c" default:"~/.blackjack/config.hcl" type:"path" help:"Preferences file"`
	Data   string `help:"Override the save-file path"`
	Seed   int64  `help:"Shuffle seed (0 means time-based)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := tui.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Data != "" {
		cfg.DataFile = c.Data
	}

	st := store.New(cfg.DataFile, logger)
	saved, err := st.Load()
	if err != nil {
		logger.Warn("could not load saved progress, starting fresh", "error", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	table := game.NewTable(randutil.New(seed),
		game.WithBalance(saved.Balance),
		game.WithHistory(saved.History),
		game.WithSaver(st),
		game.WithLogger(logger),
	)

	return tui.Run(tui.New(table, st, cfg, logger))
}
