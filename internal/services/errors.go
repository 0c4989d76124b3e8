// Package services implements the collection stores for notes, tasks,
// invoices and time entries, plus the time session state machine. Each
// service owns an in-memory snapshot that mirrors the document store and
// is reconciled write-then-apply: the remote write happens first, the
// local snapshot changes only after it succeeds.
package services

import "errors"

var (
	// ErrValidation marks input rejected before any store write.
	ErrValidation = errors.New("validation failed")
	// ErrNoActiveSession is returned by an explicit stop when the owner
	// has no running time entry.
	ErrNoActiveSession = errors.New("no active time session")
	// ErrInvalidTransition rejects invoice status changes that move
	// backward or skip a step.
	ErrInvalidTransition = errors.New("invalid status transition")
)
