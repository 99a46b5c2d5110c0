package main

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/store"
)

// HistoryCmd prints the saved round history, newest first
type HistoryCmd struct {
	Data string `help:"Override the save-file path"`
}

func (c *HistoryCmd) Run() error {
	logger := setupLogger(false)

	path := c.Data
	if path == "" {
		path = store.DefaultPath()
	}
	st := store.New(path, logger)
	saved, err := st.Load()
	if err != nil {
		return err
	}

	if len(saved.History) == 0 {
		fmt.Println("No rounds played yet.")
		return nil
	}

	fmt.Printf("Balance: $%d\n\n", saved.Balance)
	for _, e := range saved.History {
		fmt.Println(e.Timestamp.Format("2006-01-02 15:04:05"))
		for i, h := range e.PlayerHands {
			fmt.Printf("  Hand %d: %s (score %d, bet $%d, %s)\n",
				i+1, strings.Join(h.Cards, " "), h.Score, h.Bet, h.Outcome)
		}
		fmt.Printf("  Dealer: %s (score %d)\n", strings.Join(e.Dealer.Cards, " "), e.Dealer.Score)
		fmt.Printf("  %s\n\n", e.Result)
	}
	return nil
}
