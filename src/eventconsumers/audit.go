package eventconsumers

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/jvalente2019/teller/src/eventmodels"
	pubsub "github.com/jvalente2019/teller/src/eventpubsub"
)

// AuditWorker writes the account lifecycle to the log. It only observes:
// account state is mutated synchronously by whoever publishes the events.
type AuditWorker struct {
	wg *sync.WaitGroup
}

func (w *AuditWorker) handleAccountOpened(ev eventmodels.AccountOpenedEvent) {
	log.WithFields(log.Fields{
		"account":   ev.AccountID,
		"available": ev.Available,
		"present":   ev.Present,
		"live":      ev.Live,
	}).Info("account opened")
}

func (w *AuditWorker) handleAccountUpdated(ev eventmodels.AccountUpdatedEvent) {
	log.WithFields(log.Fields{
		"account":       ev.AccountID,
		"prevAvailable": ev.PrevAvailable,
		"prevPresent":   ev.PrevPresent,
		"available":     ev.Available,
		"present":       ev.Present,
	}).Info("account updated")
}

func (w *AuditWorker) handleUpdateRejected(ev eventmodels.UpdateRejectedEvent) {
	log.WithFields(log.Fields{
		"account": ev.AccountID,
		"kind":    ev.Kind,
		"reason":  ev.Reason,
	}).Warn("update rejected")
}

func (w *AuditWorker) handleAccountClosed(ev eventmodels.AccountClosedEvent) {
	log.WithFields(log.Fields{
		"account": ev.AccountID,
		"live":    ev.Live,
	}).Info("account closed")
}

func (w *AuditWorker) Start(ctx context.Context) {
	w.wg.Add(1)

	pubsub.Subscribe("AuditWorker", pubsub.AccountOpenedEvent, w.handleAccountOpened)
	pubsub.Subscribe("AuditWorker", pubsub.AccountUpdatedEvent, w.handleAccountUpdated)
	pubsub.Subscribe("AuditWorker", pubsub.UpdateRejectedEvent, w.handleUpdateRejected)
	pubsub.Subscribe("AuditWorker", pubsub.AccountClosedEvent, w.handleAccountClosed)

	go func() {
		defer w.wg.Done()

		for {
			select {
			case <-ctx.Done():
				log.Info("stopping AuditWorker consumer")
				return
			}
		}
	}()
}

func NewAuditWorkerClient(wg *sync.WaitGroup) *AuditWorker {
	return &AuditWorker{
		wg: wg,
	}
}
