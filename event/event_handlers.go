package event

import (
	"github.com/sirupsen/logrus"
)

// EventHandler reacts to a committed audit event.
// A handler returns nil when the event is none of its business.
type EventHandler func(e *EventRecord) *EventHandleResult

type EventHandleResult struct {
	Success           bool
	Message           string
	HandlerIdentifier string
}

var EventHandlers []EventHandler

var InvokeHandlersFunc = invokeHandlers

func invokeHandlers(record *EventRecord) []EventHandleResult {
	results := []EventHandleResult{}
	for _, handler := range EventHandlers {
		logrus.Debug("dispatching event ", record.Event)
		r := handler(record)

		if r == nil {
			continue
		}

		results = append(results, *r)

		if r.Success {
			logrus.Info("event handled. ", r)
		} else {
			logrus.Error("event handler failed. ", r)
		}
	}
	return results
}
