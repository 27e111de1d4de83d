/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination wallet_service_mocks_test.go -self_package mocks -package wallet -source=wallet_service.go -mock_names agentClient=MockAgentClient

// Package wallet handles agent provisioning and tenant wallet lifecycle:
// spinning up a dedicated agent, creating a tenant on a shared agent,
// wallet deletion and agent health.
package wallet

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"

	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/messaging/spi"
)

type agentClient interface {
	Health(ctx context.Context, target agent.Target) (json.RawMessage, error)
	ProvisionWallet(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	CreateTenant(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	DeleteWallet(ctx context.Context, target agent.Target) (json.RawMessage, error)
}

// SpinupStatus reports the progress of an agent spin-up.
type SpinupStatus struct {
	AgentSpinupStatus int    `json:"agentSpinupStatus"`
	AgentURL          string `json:"agentUrl,omitempty"`
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	AgentClient agentClient
}

// Service implements wallet lifecycle operations.
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

// ProvisionAgent spins up an agent for an organization.
func (s *Service) ProvisionAgent(ctx context.Context, target agent.Target, payload json.RawMessage) (*SpinupStatus, error) {
	result, err := s.agent.ProvisionWallet(ctx, target, payload)
	if err != nil {
		return nil, asWalletError(err)
	}

	return &SpinupStatus{
		AgentSpinupStatus: int(gjson.GetBytes(result, "agentSpinupStatus").Int()),
		AgentURL:          gjson.GetBytes(result, "agentUrl").String(),
	}, nil
}

// CreateTenant creates a tenant wallet on a shared agent.
func (s *Service) CreateTenant(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error) {
	result, err := s.agent.CreateTenant(ctx, target, payload)
	if err != nil {
		return nil, asWalletError(err)
	}

	return result, nil
}

// DeleteWallet removes the tenant wallet from its agent.
func (s *Service) DeleteWallet(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	result, err := s.agent.DeleteWallet(ctx, target)
	if err != nil {
		return nil, asWalletError(err)
	}

	return result, nil
}

// Health checks the tenant agent's liveness.
func (s *Service) Health(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	result, err := s.agent.Health(ctx, target)
	if err != nil {
		return nil, asWalletError(err)
	}

	return result, nil
}

func asWalletError(err error) error {
	var opErr *spi.Error
	if errors.As(err, &opErr) {
		return opErr
	}

	return spi.NewError(spi.AgentOperationFailed, "agent unreachable: %v", err)
}
