/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package locker provides per-key mutual exclusion. The endorsement
// orchestrator serializes state transitions per transaction identifier
// through a Provider: local for single-node deployments, redsync-backed
// for clustered ones.
package locker

import (
	"context"
	"sync"

	"github.com/go-redsync/redsync/v4"
)

// Lock is a mutex that locks based on a key.
type Lock interface {
	LockContext(ctx context.Context) error
	Unlock() (bool, error)
}

// Provider creates named mutexes.
type Provider interface {
	NewMutex(key string, opts ...redsync.Option) Lock
}

// KeyedMutexLocker is a mutex locker that locks based on a key.
type KeyedMutexLocker struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

// NewKeyedMutex creates a new mutex locker.
func NewKeyedMutex() *KeyedMutexLocker {
	return &KeyedMutexLocker{
		mutexes: make(map[string]*sync.Mutex),
	}
}

// NewMutex creates a new mutex.
func (k *KeyedMutexLocker) NewMutex(key string, _ ...redsync.Option) Lock {
	k.mu.Lock()
	if _, ok := k.mutexes[key]; !ok {
		k.mutexes[key] = &sync.Mutex{}
	}
	mu := k.mutexes[key]
	k.mu.Unlock()

	return &KeyedMutex{
		Mut: mu,
	}
}

// KeyedMutex is a mutex that locks based on a key.
type KeyedMutex struct {
	Mut *sync.Mutex
}

// LockContext locks the mutex.
func (k *KeyedMutex) LockContext(_ context.Context) error {
	k.Mut.Lock()
	return nil
}

// Unlock unlocks the mutex.
func (k *KeyedMutex) Unlock() (bool, error) {
	k.Mut.Unlock()

	return true, nil
}
