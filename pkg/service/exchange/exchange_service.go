/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination exchange_service_mocks_test.go -self_package mocks -package exchange -source=exchange_service.go -mock_names agentClient=MockAgentClient

// Package exchange forwards platform credential and proof operations to
// the external ledger agent and normalizes its responses into the
// platform's result shapes. Each operation is a one-shot forward: no local
// state is retained between the request and the agent-side asynchronous
// progression of the exchange.
package exchange

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"

	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/messaging/spi"
)

var errTargetRequired = errors.New("agent target url is required")

type agentClient interface {
	CreateLegacyInvitation(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetConnections(ctx context.Context, target agent.Target) (json.RawMessage, error)
	GetConnectionByID(ctx context.Context, target agent.Target, connectionID string) (json.RawMessage, error)
	CreateCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	CreateOutOfBandCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetIssuedCredentials(ctx context.Context, target agent.Target) (json.RawMessage, error)
	SendProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	CreateOutOfBandProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetProofPresentations(ctx context.Context, target agent.Target) (json.RawMessage, error)
	GetProofPresentationByID(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error)
	VerifyPresentation(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error)
	GetProofFormData(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error)
}

// Config holds configuration options and dependencies for Service.
type Config struct {
	AgentClient agentClient
}

// Service is the credential/proof exchange forwarder.
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

// CreateConnectionInvitation creates a connection invitation on the
// tenant's agent.
func (s *Service) CreateConnectionInvitation(ctx context.Context, target agent.Target,
	payload json.RawMessage) (*InvitationResult, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	record, err := s.agent.CreateLegacyInvitation(ctx, target, payload)
	if err != nil {
		return nil, asForwardError(err)
	}

	return &InvitationResult{
		ConnectionID:  gjson.GetBytes(record, "connection.id").String(),
		InvitationURL: gjson.GetBytes(record, "invitationUrl").String(),
		Invitation:    rawField(record, "invitation"),
	}, nil
}

// GetConnections lists the tenant's connection records.
func (s *Service) GetConnections(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	records, err := s.agent.GetConnections(ctx, target)
	if err != nil {
		return nil, asForwardError(err)
	}

	return records, nil
}

// GetConnectionByID fetches a single connection record.
func (s *Service) GetConnectionByID(ctx context.Context, target agent.Target, connectionID string) (json.RawMessage, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	if connectionID == "" {
		return nil, spi.NewError(spi.InvalidPayload, "connection id is required")
	}

	record, err := s.agent.GetConnectionByID(ctx, target, connectionID)
	if err != nil {
		return nil, asForwardError(err)
	}

	return record, nil
}

// SendCredentialOffer sends a credential offer over an existing
// connection.
func (s *Service) SendCredentialOffer(ctx context.Context, target agent.Target,
	payload json.RawMessage) (*CredentialExchangeResult, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	record, err := s.agent.CreateCredentialOffer(ctx, target, payload)
	if err != nil {
		return nil, asForwardError(err)
	}

	return newCredentialExchangeResult(record), nil
}

// SendOutOfBandCredentialOffer creates a connection-less credential offer.
func (s *Service) SendOutOfBandCredentialOffer(ctx context.Context, target agent.Target,
	payload json.RawMessage) (*CredentialExchangeResult, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	record, err := s.agent.CreateOutOfBandCredentialOffer(ctx, target, payload)
	if err != nil {
		return nil, asForwardError(err)
	}

	return newCredentialExchangeResult(record), nil
}

// GetIssuedCredentials lists the tenant's credential exchange records.
func (s *Service) GetIssuedCredentials(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	records, err := s.agent.GetIssuedCredentials(ctx, target)
	if err != nil {
		return nil, asForwardError(err)
	}

	return records, nil
}

// SendProofRequest sends a proof request over an existing connection.
func (s *Service) SendProofRequest(ctx context.Context, target agent.Target,
	payload json.RawMessage) (*ProofExchangeResult, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	record, err := s.agent.SendProofRequest(ctx, target, payload)
	if err != nil {
		return nil, asForwardError(err)
	}

	return newProofExchangeResult(record), nil
}

// SendOutOfBandProofRequest creates a connection-less proof request.
func (s *Service) SendOutOfBandProofRequest(ctx context.Context, target agent.Target,
	payload json.RawMessage) (*ProofExchangeResult, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	record, err := s.agent.CreateOutOfBandProofRequest(ctx, target, payload)
	if err != nil {
		return nil, asForwardError(err)
	}

	return newProofExchangeResult(record), nil
}

// GetProofPresentations lists the tenant's proof exchange records.
func (s *Service) GetProofPresentations(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	records, err := s.agent.GetProofPresentations(ctx, target)
	if err != nil {
		return nil, asForwardError(err)
	}

	return records, nil
}

// GetProofPresentationByID fetches a single proof exchange record.
func (s *Service) GetProofPresentationByID(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	if proofID == "" {
		return nil, spi.NewError(spi.InvalidPayload, "proof exchange id is required")
	}

	record, err := s.agent.GetProofPresentationByID(ctx, target, proofID)
	if err != nil {
		return nil, asForwardError(err)
	}

	return record, nil
}

// VerifyPresentation asks the agent to verify a received presentation and
// normalizes its verdict.
func (s *Service) VerifyPresentation(ctx context.Context, target agent.Target, proofID string) (*VerificationResult, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	if proofID == "" {
		return nil, spi.NewError(spi.InvalidPayload, "proof exchange id is required")
	}

	record, err := s.agent.VerifyPresentation(ctx, target, proofID)
	if err != nil {
		return nil, asForwardError(err)
	}

	return &VerificationResult{
		ProofExchangeID: gjson.GetBytes(record, "id").String(),
		Verified:        gjson.GetBytes(record, "isVerified").Bool(),
		State:           gjson.GetBytes(record, "state").String(),
		Record:          record,
	}, nil
}

// GetProofFormData fetches the disclosed attributes of a presentation.
func (s *Service) GetProofFormData(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error) {
	if err := checkTarget(target); err != nil {
		return nil, err
	}

	if proofID == "" {
		return nil, spi.NewError(spi.InvalidPayload, "proof exchange id is required")
	}

	data, err := s.agent.GetProofFormData(ctx, target, proofID)
	if err != nil {
		return nil, asForwardError(err)
	}

	return data, nil
}

func newCredentialExchangeResult(record json.RawMessage) *CredentialExchangeResult {
	return &CredentialExchangeResult{
		CredentialExchangeID: gjson.GetBytes(record, "credentialRecord.id").String(),
		State:                gjson.GetBytes(record, "credentialRecord.state").String(),
		InvitationURL:        gjson.GetBytes(record, "invitationUrl").String(),
		Record:               record,
	}
}

func newProofExchangeResult(record json.RawMessage) *ProofExchangeResult {
	return &ProofExchangeResult{
		ProofExchangeID: gjson.GetBytes(record, "proofRecord.id").String(),
		State:           gjson.GetBytes(record, "proofRecord.state").String(),
		InvitationURL:   gjson.GetBytes(record, "invitationUrl").String(),
		Record:          record,
	}
}

func checkTarget(target agent.Target) error {
	if target.URL == "" {
		return spi.NewError(spi.InvalidPayload, "%s", errTargetRequired)
	}

	return nil
}

// asForwardError keeps structured agent failures as-is and folds transport
// failures into AgentOperationFailed so the forwarder surfaces a single
// failure kind.
func asForwardError(err error) error {
	var opErr *spi.Error
	if errors.As(err, &opErr) {
		return opErr
	}

	return spi.NewError(spi.AgentOperationFailed, "agent unreachable: %v", err)
}

func rawField(record json.RawMessage, path string) json.RawMessage {
	result := gjson.GetBytes(record, path)
	if !result.Exists() {
		return nil
	}

	return json.RawMessage(result.Raw)
}
