// Package time holds small time helpers shared by services and the CLI
package time

import "time"

// Ptr returns t in UTC as a pointer, nil for the zero time
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

// Stamp formats t as RFC3339, empty when t is nil or zero
func Stamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
