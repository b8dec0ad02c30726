package queue

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/taemotherlode01/ministore-api/internal/model"
)

// AuditHandler logs each record event. Events without a kind or action are
// rejected so the transport can drop or retry them.
func AuditHandler(logger *log.Logger) Handler {
	return func(ev model.RecordEvent) error {
		if ev.Kind == "" || ev.Action == "" {
			return fmt.Errorf("event %s has no kind or action", ev.ID)
		}
		logger.Info("record changed",
			"event_id", ev.ID,
			"kind", ev.Kind,
			"action", ev.Action,
			"record_id", ev.RecordID,
			"occurred_at", ev.OccurredAt,
		)
		return nil
	}
}

// StartAuditSubscriber attaches the audit handler to the record events topic.
func StartAuditSubscriber(q Queue, logger *log.Logger) error {
	if err := q.Subscribe(TopicRecordEvents, AuditHandler(logger)); err != nil {
		return fmt.Errorf("subscribe audit handler: %w", err)
	}
	return nil
}
