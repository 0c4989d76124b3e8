// Package query contains the pure, stateless transformations applied to
// collection snapshots: text search, status filtering and the aggregate
// statistics shown on the dashboard cards.
package query

import (
	"strings"
	"time"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
)

type TaskStatus string

const (
	TaskStatusAll       TaskStatus = "all"
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// SearchNotes keeps notes whose title or content contains term,
// case-insensitively, preserving snapshot order.
func SearchNotes(notes []models.Note, term string) []models.Note {
	if term == "" {
		return notes
	}
	result := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if matches(term, note.Title, note.Content) {
			result = append(result, note)
		}
	}
	return result
}

// FilterTasks applies the text search over title and description together
// with the all|pending|completed status partition.
func FilterTasks(tasks []models.Task, term string, status TaskStatus) []models.Task {
	result := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if !matches(term, task.Title, task.Description) {
			continue
		}
		switch status {
		case TaskStatusCompleted:
			if !task.Completed {
				continue
			}
		case TaskStatusPending:
			if task.Completed {
				continue
			}
		}
		result = append(result, task)
	}
	return result
}

// SearchInvoices keeps invoices whose client name or invoice number
// contains term.
func SearchInvoices(invoices []models.Invoice, term string) []models.Invoice {
	if term == "" {
		return invoices
	}
	result := make([]models.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		if matches(term, invoice.ClientName, invoice.InvoiceNumber) {
			result = append(result, invoice)
		}
	}
	return result
}

type TaskStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

// ComputeTaskStats reduces the snapshot into the dashboard counters.
// A task is overdue when it is pending and its due date lies before now.
func ComputeTaskStats(tasks []models.Task, now time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if task.DueDate == nil {
			continue
		}
		due, err := time.Parse("2006-01-02", *task.DueDate)
		if err == nil && due.Before(now) {
			stats.Overdue++
		}
	}
	return stats
}

type InvoiceStats struct {
	Total       int     `json:"total"`
	Draft       int     `json:"draft"`
	Sent        int     `json:"sent"`
	Paid        int     `json:"paid"`
	TotalAmount float64 `json:"total_amount"`
}

func ComputeInvoiceStats(invoices []models.Invoice) InvoiceStats {
	stats := InvoiceStats{Total: len(invoices)}
	for _, invoice := range invoices {
		switch invoice.Status {
		case models.StatusDraft:
			stats.Draft++
		case models.StatusSent:
			stats.Sent++
		case models.StatusPaid:
			stats.Paid++
		}
		stats.TotalAmount += invoice.Total
	}
	return stats
}

type TimeStats struct {
	TotalSeconds int64 `json:"total_seconds"`
	TodaySeconds int64 `json:"today_seconds"`
	TodayEntries int   `json:"today_entries"`
}

// ComputeTimeStats sums finished durations overall and for entries created
// on the same calendar day as now. Running entries contribute nothing
// until stopped.
func ComputeTimeStats(entries []models.TimeEntry, now time.Time) TimeStats {
	var stats TimeStats
	year, month, day := now.Date()
	for _, entry := range entries {
		if entry.Duration != nil {
			stats.TotalSeconds += *entry.Duration
		}
		y, m, d := entry.CreatedAt.Date()
		if y == year && m == month && d == day {
			stats.TodayEntries++
			if entry.Duration != nil {
				stats.TodaySeconds += *entry.Duration
			}
		}
	}
	return stats
}
