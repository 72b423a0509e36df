package eventpubsub

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var bus EventBus.Bus

// Init must run once before any Publish or Subscribe call.
func Init() {
	bus = EventBus.New()
}

func Publish(publisherName string, topic string, event interface{}) {
	log.Debugf("[%v] Published to topic %s", publisherName, topic)

	bus.Publish(topic, event)
}

func Subscribe(subscriberName string, topic string, callbackFn interface{}) {
	if err := bus.SubscribeAsync(topic, callbackFn, false); err != nil {
		log.Errorf("[%v] failed to subscribe to topic %s: %v", subscriberName, topic, err)
		return
	}

	log.Infof("[%v] Subscribed to topic %s", subscriberName, topic)
}

// Drain blocks until every async subscriber has finished handling the events
// published so far.
func Drain() {
	bus.WaitAsync()
}
