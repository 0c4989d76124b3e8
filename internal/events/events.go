package events

import (
	"time"

	"github.com/google/uuid"
)

// ActivityTopic carries one event per completed mutation, keyed by owner so
// a single consumer sees an owner's activity in order.
const ActivityTopic = "workspace.activity"

const (
	NoteCreated = "NOTE_CREATED"
	NoteUpdated = "NOTE_UPDATED"
	NoteDeleted = "NOTE_DELETED"

	TaskCreated = "TASK_CREATED"
	TaskUpdated = "TASK_UPDATED"
	TaskToggled = "TASK_TOGGLED"
	TaskDeleted = "TASK_DELETED"

	TimeEntryCreated = "TIME_ENTRY_CREATED"
	TimeEntryDeleted = "TIME_ENTRY_DELETED"
	TimerStarted     = "TIMER_STARTED"
	TimerStopped     = "TIMER_STOPPED"

	InvoiceCreated       = "INVOICE_CREATED"
	InvoiceUpdated       = "INVOICE_UPDATED"
	InvoiceStatusChanged = "INVOICE_STATUS_CHANGED"
	InvoiceDeleted       = "INVOICE_DELETED"
)

// ActivityEvent describes one mutation against one collection record.
type ActivityEvent struct {
	EventType  string    `json:"eventType"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"recordId"`
	OwnerID    string    `json:"ownerId"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewActivityEvent(eventType, collection string, recordID, ownerID uuid.UUID) *ActivityEvent {
	return &ActivityEvent{
		EventType:  eventType,
		Collection: collection,
		RecordID:   recordID.String(),
		OwnerID:    ownerID.String(),
		Timestamp:  time.Now(),
	}
}
