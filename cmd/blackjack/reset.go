package main

import (
	"fmt"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/store"
)

// ResetCmd wipes the saved profile back to a fresh balance
type ResetCmd struct {
	Data string `help:"Override the save-file path"`
}

func (c *ResetCmd) Run() error {
	logger := setupLogger(false)

	path := c.Data
	if path == "" {
		path = store.DefaultPath()
	}
	st := store.New(path, logger)
	if _, err := st.Load(); err != nil {
		logger.Warn("existing save file unreadable, resetting anyway", "error", err)
	}
	if err := st.Reset(); err != nil {
		return err
	}

	fmt.Printf("Profile reset: balance $%d, history cleared.\n", game.StartingBalance)
	return nil
}
