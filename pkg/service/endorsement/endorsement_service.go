/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination endorsement_service_mocks_test.go -self_package github.com/credentia/platform/pkg/service/endorsement -package endorsement -source=endorsement_service.go -mock_names transactionStore=MockTransactionStore,agentClient=MockAgentClient

// Package endorsement drives a draft ledger write through endorsement,
// signing and submission. The authoring party and the endorsing party are
// different security principals possibly acting at different times; the
// state machine is what prevents a submission without a valid prior
// signature, and prevents signature reuse by requiring state to advance
// monotonically.
package endorsement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/sjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/locker"
	"github.com/credentia/platform/pkg/messaging/spi"
	"github.com/credentia/platform/pkg/observability/metrics"
	"github.com/credentia/platform/pkg/observability/metrics/noop"
)

var logger = log.New("endorsement")

type transactionStore interface {
	Create(ctx context.Context, data *TransactionData) (*Transaction, error)
	Get(ctx context.Context, txID TxID) (*Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
}

type agentClient interface {
	CreateEndorsementRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	EndorseTransaction(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	WriteTransaction(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	TransactionStore transactionStore
	AgentClient      agentClient
	Locker           locker.Provider
	Metrics          metrics.Metrics
}

// Service orchestrates the endorsement transaction state machine.
type Service struct {
	store   transactionStore
	agent   agentClient
	locker  locker.Provider
	metrics metrics.Metrics
}

// NewService returns a new Service instance.
func NewService(config *Config) (*Service, error) {
	if config.TransactionStore == nil {
		return nil, errors.New("transaction store is required")
	}

	if config.AgentClient == nil {
		return nil, errors.New("agent client is required")
	}

	lockProvider := config.Locker
	if lockProvider == nil {
		lockProvider = locker.NewKeyedMutex()
	}

	m := config.Metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	return &Service{
		store:   config.TransactionStore,
		agent:   config.AgentClient,
		locker:  lockProvider,
		metrics: m,
	}, nil
}

// CreateDraft persists a new transaction in the drafted state. A failed or
// submitted transaction cannot be reused; retrying a rejected write starts
// here again.
func (s *Service) CreateDraft(ctx context.Context, author string, payloadType PayloadType,
	payload json.RawMessage) (*Transaction, error) {
	if author == "" {
		return nil, ErrAuthorRequired
	}

	if len(payload) == 0 {
		return nil, ErrPayloadRequired
	}

	now := time.Now().UTC()

	tx, err := s.store.Create(ctx, &TransactionData{
		Author:       author,
		PayloadType:  payloadType,
		Payload:      payload,
		State:        TransactionStateDrafted,
		StateHistory: []TransactionState{TransactionStateDrafted},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create draft transaction: %w", err)
	}

	logger.Info("drafted endorsement transaction", logfields.WithTxID(string(tx.ID)),
		logfields.WithAuthor(author))

	return tx, nil
}

// RequestEndorsement forwards the draft to the agent endorsement endpoint
// and, only after that call succeeds, commits the transition to the
// endorsement-requested state. An unreachable endpoint leaves the
// transaction drafted.
func (s *Service) RequestEndorsement(ctx context.Context, txID TxID, target agent.Target) (*Transaction, error) {
	return s.transition(ctx, txID, func(tx *Transaction) error {
		if err := validateStateTransition(tx.State, TransactionStateEndorsementRequested); err != nil {
			return err
		}

		request, err := sjson.SetRawBytes([]byte(`{}`), "transaction", tx.Payload)
		if err != nil {
			return fmt.Errorf("build endorsement request: %w", err)
		}

		request, err = sjson.SetBytes(request, "transactionType", string(tx.PayloadType))
		if err != nil {
			return fmt.Errorf("build endorsement request: %w", err)
		}

		endorsementRequest, err := s.agent.CreateEndorsementRequest(ctx, target, request)
		if err != nil {
			return asEndorsementError(err)
		}

		tx.EndorsementRequest = endorsementRequest

		advance(tx, TransactionStateEndorsementRequested)

		return nil
	})
}

// Sign records the endorser's co-signature. Valid only from the
// endorsement-requested state; any other state fails with
// InvalidTransactionState and performs no side effect.
func (s *Service) Sign(ctx context.Context, txID TxID, target agent.Target, signerDID string) (*Transaction, error) {
	return s.transition(ctx, txID, func(tx *Transaction) error {
		if err := validateStateTransition(tx.State, TransactionStateSigned); err != nil {
			return err
		}

		request, err := sjson.SetRawBytes([]byte(`{}`), "transaction", tx.EndorsementRequest)
		if err != nil {
			return fmt.Errorf("build sign request: %w", err)
		}

		request, err = sjson.SetBytes(request, "endorserDid", signerDID)
		if err != nil {
			return fmt.Errorf("build sign request: %w", err)
		}

		signature, err := s.agent.EndorseTransaction(ctx, target, request)
		if err != nil {
			return asEndorsementError(err)
		}

		tx.EndorserSignature = signature

		advance(tx, TransactionStateSigned)

		return nil
	})
}

// Submit sends the signed transaction to the ledger. Acceptance commits
// the submitted state; rejection commits the terminal failed state with a
// LedgerRejected descriptor carrying the ledger's reason. A transport
// failure commits nothing, leaving the transaction signed.
func (s *Service) Submit(ctx context.Context, txID TxID, target agent.Target) (*Transaction, error) {
	return s.transition(ctx, txID, func(tx *Transaction) error {
		if err := validateStateTransition(tx.State, TransactionStateSubmitted); err != nil {
			return err
		}

		request, err := sjson.SetRawBytes([]byte(`{}`), "transaction", tx.EndorserSignature)
		if err != nil {
			return fmt.Errorf("build submit request: %w", err)
		}

		result, submitErr := s.agent.WriteTransaction(ctx, target, request)
		if submitErr != nil {
			var opErr *spi.Error
			if errors.As(submitErr, &opErr) && opErr.Kind == spi.AgentOperationFailed {
				// The ledger saw and refused the write: terminal failure.
				tx.FailureReason = opErr.Message

				advance(tx, TransactionStateFailed)

				return &spi.Error{
					Kind:    spi.LedgerRejected,
					Message: fmt.Sprintf("ledger rejected transaction [%s]: %s", tx.ID, opErr.Message),
					Details: opErr.Details,
				}
			}

			return spi.NewError(spi.Unreachable, "submit transaction [%s]: %v", tx.ID, submitErr)
		}

		tx.LedgerResult = result

		advance(tx, TransactionStateSubmitted)

		return nil
	})
}

// GetTransaction returns the transaction by ID.
func (s *Service) GetTransaction(ctx context.Context, txID TxID) (*Transaction, error) {
	tx, err := s.store.Get(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return tx, nil
}

// transition runs fn with exclusive ownership of the transaction and
// persists the result. Only one transition per transaction identifier may
// be in flight at a time; concurrent sign/submit calls on the same
// identifier are mutually exclusive so a transition is never attempted
// against a stale state.
func (s *Service) transition(ctx context.Context, txID TxID, fn func(tx *Transaction) error) (*Transaction, error) {
	startTime := time.Now()
	defer func() {
		s.metrics.EndorsementTransitionTime(time.Since(startTime))
	}()

	mutex := s.locker.NewMutex(lockKey(txID))

	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock transaction [%s]: %w", txID, err)
	}

	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			logger.Warn("failed to unlock transaction", logfields.WithTxID(string(txID)), log.WithError(err))
		}
	}()

	tx, err := s.store.Get(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		// Terminal-failure transitions are committed inside fn; everything
		// else leaves the stored state untouched.
		if tx.State == TransactionStateFailed {
			if updateErr := s.store.Update(ctx, tx); updateErr != nil {
				logger.Error("failed to persist failed transaction", logfields.WithTxID(string(txID)),
					log.WithError(updateErr))
			}
		}

		return nil, err
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	logger.Info("endorsement transaction transitioned", logfields.WithTxID(string(txID)),
		logfields.WithTxState(tx.State.String()))

	return tx, nil
}

func advance(tx *Transaction, newState TransactionState) {
	tx.State = newState
	tx.StateHistory = append(tx.StateHistory, newState)
}

func lockKey(txID TxID) string {
	return "endorsement-tx:" + string(txID)
}

// asEndorsementError maps a transport-level agent failure to
// EndorsementUnavailable. Structured agent failures (non-2xx) keep their
// own kind.
func asEndorsementError(err error) error {
	var opErr *spi.Error
	if errors.As(err, &opErr) {
		return opErr
	}

	return spi.NewError(spi.EndorsementUnavailable, "endorsement endpoint unreachable: %v", err)
}
