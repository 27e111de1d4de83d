/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination ledger_service_mocks_test.go -self_package mocks -package ledger -source=ledger_service.go -mock_names agentClient=MockAgentClient

// Package ledger forwards direct (non-endorsed) ledger reads and writes:
// schemas and credential definitions on ledgers where the author may write
// without a co-signature. Writes that need an endorser go through the
// endorsement orchestrator instead.
package ledger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/messaging/spi"
)

type agentClient interface {
	CreateSchema(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetSchema(ctx context.Context, target agent.Target, schemaID string) (json.RawMessage, error)
	CreateCredentialDefinition(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetCredentialDefinition(ctx context.Context, target agent.Target, credDefID string) (json.RawMessage, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	AgentClient agentClient
}

// Service implements direct ledger operations.
type Service struct {
	agent agentClient
}

// NewService returns a new Service instance.
func NewService(config *Config) (*Service, error) {
	if config.AgentClient == nil {
		return nil, errors.New("agent client is required")
	}

	return &Service{
		agent: config.AgentClient,
	}, nil
}

// CreateSchema writes a schema to the ledger.
func (s *Service) CreateSchema(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	result, err := s.agent.CreateSchema(ctx, target, payload)
	if err != nil {
		return nil, asLedgerError(err)
	}

	return result, nil
}

// GetSchema fetches a schema by its ledger identifier.
func (s *Service) GetSchema(ctx context.Context, target agent.Target, schemaID string) (json.RawMessage, error) {
	if schemaID == "" {
		return nil, spi.NewError(spi.InvalidPayload, "schema id is required")
	}

	result, err := s.agent.GetSchema(ctx, target, schemaID)
	if err != nil {
		return nil, asLedgerError(err)
	}

	return result, nil
}

// CreateCredentialDefinition writes a credential definition to the ledger.
func (s *Service) CreateCredentialDefinition(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	result, err := s.agent.CreateCredentialDefinition(ctx, target, payload)
	if err != nil {
		return nil, asLedgerError(err)
	}

	return result, nil
}

// GetCredentialDefinition fetches a credential definition by identifier.
func (s *Service) GetCredentialDefinition(ctx context.Context, target agent.Target, credDefID string) (json.RawMessage, error) {
	if credDefID == "" {
		return nil, spi.NewError(spi.InvalidPayload, "credential definition id is required")
	}

	result, err := s.agent.GetCredentialDefinition(ctx, target, credDefID)
	if err != nil {
		return nil, asLedgerError(err)
	}

	return result, nil
}

func asLedgerError(err error) error {
	var opErr *spi.Error
	if errors.As(err, &opErr) {
		return opErr
	}

	return spi.NewError(spi.AgentOperationFailed, "agent unreachable: %v", err)
}
