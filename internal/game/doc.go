// Package game implements the core blackjack round engine.
//
// The main type is Table, which owns the shoe, the balance, the player's
// hands and the dealer hand, and drives the round state machine:
//
//	Betting → Dealing → PlayerTurn → DealerReveal → DealerTurn → Resolving → RoundOver
//
// All operations are synchronous; the presentation layer subscribes to the
// table's EventBus for state snapshots, sound cues and round results, and
// handles its own pacing.
//
// # Basic Usage
//
//	t := game.NewTable(randutil.New(time.Now().UnixNano()))
//	t.PlaceBet(100)
//	t.Deal()
//	t.Hit()
//	t.Stand()
//
// # Deterministic Testing
//
// Inject a seeded RNG and, when exact cards matter, a stacked shoe:
//
//	shoe := deck.NewStackedShoe(randutil.New(1), cards...)
//	t := game.NewTable(randutil.New(1), game.WithShoe(shoe))
package game
