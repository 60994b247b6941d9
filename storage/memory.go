// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// MemoryHandle - a Handle backed by an in-process map
//
// for tests and ephemeral runs; contents are lost on exit
type MemoryHandle struct {
	sync.RWMutex
	items map[string][]byte
}

// NewMemoryHandle - create an empty in-memory store
func NewMemoryHandle() *MemoryHandle {
	return &MemoryHandle{
		items: make(map[string][]byte),
	}
}

// Get - read a value for a given key
//
// returns a copy so callers cannot alias the stored bytes
func (m *MemoryHandle) Get(key []byte) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()
	value, ok := m.items[string(key)]
	if !ok {
		return nil, nil
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Put - store a key/value bytes pair
func (m *MemoryHandle) Put(key []byte, value []byte) error {
	m.Lock()
	defer m.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[string(key)] = stored
	return nil
}

// Delete - remove a key
func (m *MemoryHandle) Delete(key []byte) error {
	m.Lock()
	defer m.Unlock()
	delete(m.items, string(key))
	return nil
}

// Has - check if a key exists
func (m *MemoryHandle) Has(key []byte) (bool, error) {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.items[string(key)]
	return ok, nil
}
