// Package qubits maps stable logical qubit handles to contiguous device
// wires. Handles issue monotonically and are never reused; releasing a
// qubit shifts every higher wire down by one so the live handles always map
// onto a bijection with [0, Count()).
package qubits

import (
	"errors"
	"fmt"
)

// ErrInvalidQubit signals a handle that is not currently allocated.
var ErrInvalidQubit = errors.New("invalid or released qubit")

// ID is the opaque stable handle returned on allocation.
type ID int64

// Manager tracks the handle-to-wire mapping.
type Manager struct {
	wires []ID // wires[w] is the handle living at device wire w
	next  ID
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Count returns the number of live qubits.
func (m *Manager) Count() int {
	return len(m.wires)
}

// Allocate issues a fresh handle at the highest device wire.
func (m *Manager) Allocate() ID {
	id := m.next
	m.next++
	m.wires = append(m.wires, id)
	return id
}

// AllocateRange issues count fresh handles. With count zero it returns an
// empty slice and has no side effects.
func (m *Manager) AllocateRange(count int) []ID {
	ids := make([]ID, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, m.Allocate())
	}
	return ids
}

// Release frees a handle. Handles above the released wire keep their
// identity but shift down one device wire.
func (m *Manager) Release(id ID) error {
	w, err := m.Wire(id)
	if err != nil {
		return err
	}
	m.wires = append(m.wires[:w], m.wires[w+1:]...)
	return nil
}

// ReleaseAll frees every handle.
func (m *Manager) ReleaseAll() {
	m.wires = m.wires[:0]
}

// Wire resolves a handle to its current device wire.
func (m *Manager) Wire(id ID) (int, error) {
	for w, live := range m.wires {
		if live == id {
			return w, nil
		}
	}
	return 0, fmt.Errorf("qubit %d: %w", id, ErrInvalidQubit)
}

// Wires resolves a handle list to device wires, preserving order.
func (m *Manager) Wires(ids []ID) ([]int, error) {
	out := make([]int, len(ids))
	for i, id := range ids {
		w, err := m.Wire(id)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// Valid reports whether every handle is currently allocated.
func (m *Manager) Valid(ids ...ID) bool {
	for _, id := range ids {
		if _, err := m.Wire(id); err != nil {
			return false
		}
	}
	return true
}
