// Package store holds session Store implementations
package store

import (
	"context"
	"sync"

	"dataproc/internal/services/session/domain"
)

// Memory keeps the record in process, for the console
type Memory struct {
	mu  sync.RWMutex
	rec *domain.Record
}

// NewMemory returns an empty Memory store
func NewMemory() *Memory { return &Memory{} }

// Load implements domain.Store
func (m *Memory) Load(context.Context) (domain.Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.rec == nil {
		return domain.Record{}, false, nil
	}
	return *m.rec, true, nil
}

// Save implements domain.Store
func (m *Memory) Save(_ context.Context, r domain.Record) error {
	m.mu.Lock()
	m.rec = &r
	m.mu.Unlock()
	return nil
}

// Clear implements domain.Store
func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	m.rec = nil
	m.mu.Unlock()
	return nil
}
