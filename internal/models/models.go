package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three allowed priorities.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type InvoiceStatus string

const (
	StatusDraft InvoiceStatus = "draft"
	StatusSent  InvoiceStatus = "sent"
	StatusPaid  InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == StatusDraft || s == StatusSent || s == StatusPaid
}

// CanTransition reports whether next is the immediate successor of s.
// Status only ever moves forward: draft -> sent -> paid.
func (s InvoiceStatus) CanTransition(next InvoiceStatus) bool {
	switch s {
	case StatusDraft:
		return next == StatusSent
	case StatusSent:
		return next == StatusPaid
	default:
		return false
	}
}

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"size:255;not null;column:title" json:"title"`
	Content   string    `gorm:"type:text;column:content" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
}

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null;column:title" json:"title"`
	Description string    `gorm:"type:text;column:description" json:"description,omitempty"`
	Priority    Priority  `gorm:"size:10;not null;default:'medium';column:priority" json:"priority"`
	Completed   bool      `gorm:"not null;default:false;column:completed" json:"completed"`
	// Date only, YYYY-MM-DD. Nil when the task has no deadline.
	DueDate   *string   `gorm:"size:10;column:due_date" json:"due_date,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
}

// TimeEntry rows carry a partial unique index on (user_id) WHERE
// is_running, so the store itself rejects a second running entry for an
// owner no matter how requests interleave.
type TimeEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProjectName string     `gorm:"size:255;not null;column:project_name" json:"project_name"`
	Description string     `gorm:"type:text;column:description" json:"description,omitempty"`
	StartTime   time.Time  `gorm:"not null;column:start_time" json:"start_time"`
	EndTime     *time.Time `gorm:"column:end_time" json:"end_time,omitempty"`
	// Whole seconds, set only once the entry has been stopped.
	Duration  *int64    `gorm:"column:duration" json:"duration,omitempty"`
	IsRunning bool      `gorm:"not null;default:false;column:is_running" json:"is_running"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;column:user_id;uniqueIndex:uniq_one_running_per_owner,where:is_running" json:"user_id"`
}

// InvoiceItem is an embedded line of its parent invoice, persisted inside
// the invoice's items document rather than its own table. Item ids are
// client-transient; the service re-stamps them on save.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// InvoiceItems stores the line items as a single jsonb document, keeping
// the invoice a flat record with one nested list, the same shape the
// document store already holds.
type InvoiceItems []InvoiceItem

func (items InvoiceItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

func (items *InvoiceItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for invoice items")
	}
	return json.Unmarshal(raw, items)
}

type Invoice struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InvoiceNumber string        `gorm:"size:64;not null;index;column:invoice_number" json:"invoice_number"`
	ClientName    string        `gorm:"size:255;not null;column:client_name" json:"client_name"`
	ClientEmail   string        `gorm:"size:255;column:client_email" json:"client_email"`
	ClientAddress string        `gorm:"type:text;column:client_address" json:"client_address"`
	InvoiceDate   string        `gorm:"size:10;column:invoice_date" json:"invoice_date"`
	DueDate       string        `gorm:"size:10;column:due_date" json:"due_date"`
	Items         InvoiceItems  `gorm:"type:jsonb;column:items" json:"items"`
	Subtotal      float64       `gorm:"column:subtotal" json:"subtotal"`
	TaxRate       float64       `gorm:"column:tax_rate" json:"tax_rate"`
	TaxAmount     float64       `gorm:"column:tax_amount" json:"tax_amount"`
	Total         float64       `gorm:"column:total" json:"total"`
	Status        InvoiceStatus `gorm:"size:10;not null;default:'draft';column:status" json:"status"`
	CreatedAt     time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"column:updated_at" json:"updated_at"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
}
