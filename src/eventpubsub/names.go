package eventpubsub

const (
	AccountOpenedEvent  = "AccountOpenedEvent"
	AccountUpdatedEvent = "AccountUpdatedEvent"
	UpdateRejectedEvent = "UpdateRejectedEvent"
	AccountClosedEvent  = "AccountClosedEvent"
)
