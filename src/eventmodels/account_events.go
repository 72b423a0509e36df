package eventmodels

import (
	"github.com/google/uuid"

	"github.com/jvalente2019/teller/src/models"
)

// AccountOpenedEvent is published after an account joins the vault, whether
// created fresh, duplicated, or seeded.
type AccountOpenedEvent struct {
	AccountID uuid.UUID
	Available float64
	Present   float64
	Live      int64
}

// AccountUpdatedEvent is published after a validated update commits.
type AccountUpdatedEvent struct {
	AccountID     uuid.UUID
	PrevAvailable float64
	PrevPresent   float64
	Available     float64
	Present       float64
}

// UpdateRejectedEvent is published when a validated update is refused. The
// account's balances are unchanged; Available and Present carry the values it
// kept.
type UpdateRejectedEvent struct {
	AccountID uuid.UUID
	Kind      models.ErrorKind
	Reason    string
	Available float64
	Present   float64
}

// AccountClosedEvent is published after an account is released.
type AccountClosedEvent struct {
	AccountID uuid.UUID
	Live      int64
}
