// internal/model/record_event.go
package model

import "time"

const (
	KindCustomer = "customer"
	KindProduct  = "product"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordEvent is published after a customer or product row changes.
type RecordEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Action     string    `json:"action"`
	RecordID   int       `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Topic is the routing key the event is published under, e.g. "customer.created".
func (e RecordEvent) Topic() string {
	return e.Kind + "." + e.Action
}
