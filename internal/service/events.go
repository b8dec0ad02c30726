// internal/service/events.go
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/queue"
)

// publish emits a record event. Failures are logged, never returned: the
// row change has already been committed.
func publish(q queue.Queue, kind, action string, recordID int) {
	if q == nil {
		return
	}
	ev := model.RecordEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		Action:     action,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
	}
	if err := q.Publish(queue.TopicRecordEvents, ev); err != nil {
		obs.Logger.Warn("failed to publish record event", "topic", ev.Topic(), "record_id", recordID, "error", err)
	}
}
