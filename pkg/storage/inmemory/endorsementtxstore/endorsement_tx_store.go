/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package endorsementtxstore provides a single-node, in-memory endorsement
// transaction store for development and tests.
package endorsementtxstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credentia/platform/pkg/service/endorsement"
)

// Store keeps transactions in a map guarded by a mutex.
type Store struct {
	mutex sync.RWMutex
	txs   map[endorsement.TxID]*endorsement.Transaction
}

// New creates the store.
func New() *Store {
	return &Store{
		txs: make(map[endorsement.TxID]*endorsement.Transaction),
	}
}

func (s *Store) Create(_ context.Context, data *endorsement.TransactionData) (*endorsement.Transaction, error) {
	tx := &endorsement.Transaction{
		ID:              endorsement.TxID(uuid.NewString()),
		TransactionData: *data,
	}

	s.mutex.Lock()
	s.txs[tx.ID] = copyTx(tx)
	s.mutex.Unlock()

	return tx, nil
}

func (s *Store) Get(_ context.Context, txID endorsement.TxID) (*endorsement.Transaction, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tx, ok := s.txs[txID]
	if !ok {
		return nil, endorsement.ErrDataNotFound
	}

	return copyTx(tx), nil
}

func (s *Store) Update(_ context.Context, tx *endorsement.Transaction) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.txs[tx.ID]; !ok {
		return endorsement.ErrDataNotFound
	}

	s.txs[tx.ID] = copyTx(tx)

	return nil
}

func copyTx(tx *endorsement.Transaction) *endorsement.Transaction {
	clone := *tx
	clone.StateHistory = append([]endorsement.TransactionState(nil), tx.StateHistory...)

	return &clone
}
