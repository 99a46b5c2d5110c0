package game

import "errors"

// ErrInvalidCommand is returned when a command arrives in the wrong phase
// or targets a hand that cannot act. The table state is left untouched.
var ErrInvalidCommand = errors.New("invalid command")

// ErrInsufficientFunds is returned when a bet, double or split would
// exceed the current balance. The table state is left untouched.
var ErrInsufficientFunds = errors.New("insufficient funds")
