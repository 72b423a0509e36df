package models

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Balance floors shared by every account.
const (
	MinAvailableBalance = 5.00
	MinPresentBalance   = 5.00
)

// Account holds a validated pair of balances. Every account that exists
// satisfies: available >= MinAvailableBalance, present >= MinPresentBalance,
// available <= present.
type Account struct {
	id        uuid.UUID
	available float64
	present   float64
	counter   *Counter
	closed    bool
}

// NewAccount opens an account at the default minimums.
func NewAccount(counter *Counter) *Account {
	account := &Account{
		id:        uuid.New(),
		available: MinAvailableBalance,
		present:   MinPresentBalance,
		counter:   counter,
	}

	counter.increment()

	return account
}

// NewAccountWithBalances opens an account at the requested balances. A pair
// that fails validation does not fail the construction: the rejection is
// logged and the account falls back to the default minimums.
func NewAccountWithBalances(counter *Counter, available float64, present float64) *Account {
	account := NewAccount(counter)

	if err := account.SetBalances(available, present); err != nil {
		log.Warnf("create: %v -> account set to defaults ($%.2f, $%.2f)", err, MinAvailableBalance, MinPresentBalance)
	}

	return account
}

// Clone opens an independent account holding the same balances. The copy gets
// its own identity and its own slot in the live counter.
func (a *Account) Clone() *Account {
	copied := NewAccount(a.counter)
	copied.available = a.available
	copied.present = a.present

	return copied
}

// SetBalances validates and commits a new balance pair. Checks run in a fixed
// order: available floor, then present floor, then available <= present. On
// rejection neither field changes and the returned error names the first rule
// violated.
func (a *Account) SetBalances(available float64, present float64) error {
	if available < MinAvailableBalance {
		return ErrAvailableBelowMin
	}

	if present < MinPresentBalance {
		return ErrPresentBelowMin
	}

	if available > present {
		return ErrAvailableExceedsPresent
	}

	a.available = available
	a.present = present

	return nil
}

func (a *Account) ID() uuid.UUID {
	return a.id
}

func (a *Account) Available() float64 {
	return a.available
}

func (a *Account) Present() float64 {
	return a.present
}

// Close releases the account's slot in the live counter. Closing twice is a
// no-op, so the counter can never go negative.
func (a *Account) Close() {
	if a.closed {
		return
	}

	a.closed = true
	a.counter.release()
}

func (a *Account) String() string {
	return fmt.Sprintf("Account{ available: $%.2f, present: $%.2f }", a.available, a.present)
}
