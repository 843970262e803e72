package store

import "time"

// Slot is one persisted key-value row.
type Slot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
