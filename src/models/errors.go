package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rejected balance change.
type ErrorKind string

const (
	KindAvailableBelowMin       ErrorKind = "AvailableBelowMinimum"
	KindPresentBelowMin         ErrorKind = "PresentBelowMinimum"
	KindAvailableExceedsPresent ErrorKind = "AvailableExceedsPresent"
	KindUnknown                 ErrorKind = "Unknown"
)

// BalanceError is a rejected balance change. The account is never left
// half-updated: callers decide recovery, so the degrading constructor swallows
// it while the update path reports it.
type BalanceError struct {
	Kind ErrorKind
	msg  string
}

func (e *BalanceError) Error() string { return e.msg }

var (
	ErrAvailableBelowMin       = &BalanceError{Kind: KindAvailableBelowMin, msg: fmt.Sprintf("available balance below minimum $%.2f", MinAvailableBalance)}
	ErrPresentBelowMin         = &BalanceError{Kind: KindPresentBelowMin, msg: fmt.Sprintf("present balance below minimum $%.2f", MinPresentBalance)}
	ErrAvailableExceedsPresent = &BalanceError{Kind: KindAvailableExceedsPresent, msg: "available balance cannot exceed present balance"}
)

var (
	ErrNoSuchAccount = fmt.Errorf("no account at that index")
	ErrVaultEmpty    = fmt.Errorf("no accounts opened yet")
)

// KindOf extracts the violation kind from err, or KindUnknown for anything
// outside the balance taxonomy.
func KindOf(err error) ErrorKind {
	var balanceErr *BalanceError
	if errors.As(err, &balanceErr) {
		return balanceErr.Kind
	}

	return KindUnknown
}
