/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gateway is the calling side of the command catalog: a typed
// facade over the RPC client that routes each command to its catalog
// topic and retries idempotent reads on transient failures.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/commands"
	"github.com/credentia/platform/pkg/messaging/spi"
)

var logger = log.New("gateway")

//go:generate mockgen -destination gateway_mocks_test.go -self_package mocks -package gateway -source=gateway.go -mock_names commandCaller=MockCommandCaller

type commandCaller interface {
	Call(ctx context.Context, topic, command string, payload json.RawMessage) (json.RawMessage, error)
}

// Config defines the configuration for the gateway.
type Config struct {
	Caller       commandCaller
	RetryInitial time.Duration
	RetryMax     time.Duration
	RetryCount   uint64
}

// Gateway sends catalog commands on behalf of the REST surface.
type Gateway struct {
	caller       commandCaller
	retryInitial time.Duration
	retryMax     time.Duration
	retryCount   uint64
}

// New returns a new Gateway instance.
func New(config *Config) *Gateway {
	g := &Gateway{
		caller:       config.Caller,
		retryInitial: config.RetryInitial,
		retryMax:     config.RetryMax,
		retryCount:   config.RetryCount,
	}

	if g.retryInitial == 0 {
		g.retryInitial = 500 * time.Millisecond
	}

	if g.retryMax == 0 {
		g.retryMax = 5 * time.Second
	}

	if g.retryCount == 0 {
		g.retryCount = 2
	}

	return g
}

// Send dispatches a catalog command with an already-encoded payload.
func (g *Gateway) Send(ctx context.Context, command string, payload json.RawMessage) (json.RawMessage, error) {
	entry, ok := commands.Catalog[command]
	if !ok {
		return nil, spi.NewError(spi.UnknownCommand, "command [%s] is not in the catalog", command)
	}

	if !entry.Idempotent {
		return g.caller.Call(ctx, entry.Topic, command, payload)
	}

	return g.sendWithRetry(ctx, entry.Topic, command, payload)
}

// sendWithRetry retries timeouts and unreachable-bus failures for
// idempotent commands. Handler-reported errors are returned as-is since
// the command did reach a handler.
func (g *Gateway) sendWithRetry(ctx context.Context, topic, command string,
	payload json.RawMessage) (json.RawMessage, error) {
	var body json.RawMessage

	op := func() error {
		var err error

		body, err = g.caller.Call(ctx, topic, command, payload)
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}

		return err
	}

	notify := func(err error, d time.Duration) {
		logger.Warnc(ctx, "retrying command", log.WithError(err),
			logfields.WithCommand(command), logfields.WithDuration(d))
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.retryInitial
	b.MaxInterval = g.retryMax

	err := backoff.RetryNotify(op,
		backoff.WithContext(backoff.WithMaxRetries(b, g.retryCount), ctx), notify)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func retryable(err error) bool {
	var spiErr *spi.Error
	if errors.As(err, &spiErr) {
		kind := spiErr.Descriptor().Kind

		return kind == spi.Timeout || kind == spi.Unreachable
	}

	return false
}

// ProvisionAgent starts a cloud agent for a tenant.
func (g *Gateway) ProvisionAgent(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentSpinup, target, payload)
}

// CreateTenant creates a tenant on a multi-tenant agent.
func (g *Gateway) CreateTenant(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.CreateTenant, target, payload)
}

// DeleteWallet removes a tenant wallet from its agent.
func (g *Gateway) DeleteWallet(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.DeleteWallet, target, nil)
}

// AgentHealth reports the liveness of a tenant's agent.
func (g *Gateway) AgentHealth(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentHealth, target, nil)
}

// CreateSchema writes a schema directly to the ledger.
func (g *Gateway) CreateSchema(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentCreateSchema, target, payload)
}

// GetSchema resolves a schema by its ledger ID.
func (g *Gateway) GetSchema(ctx context.Context, target agent.Target, schemaID string) (json.RawMessage, error) {
	return g.sendTargetedID(ctx, commands.AgentGetSchema, target, schemaID)
}

// CreateCredentialDefinition writes a credential definition directly to the ledger.
func (g *Gateway) CreateCredentialDefinition(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentCreateCredentialDefinition, target, payload)
}

// GetCredentialDefinition resolves a credential definition by its ledger ID.
func (g *Gateway) GetCredentialDefinition(ctx context.Context, target agent.Target,
	credDefID string) (json.RawMessage, error) {
	return g.sendTargetedID(ctx, commands.AgentGetCredentialDefinition, target, credDefID)
}

// CreateConnectionInvitation creates a connection invitation on the agent.
func (g *Gateway) CreateConnectionInvitation(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentCreateConnectionLegacyInvitation, target, payload)
}

// GetConnections lists the agent's connection records.
func (g *Gateway) GetConnections(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentGetAllConnections, target, nil)
}

// GetConnectionByID resolves a single connection record.
func (g *Gateway) GetConnectionByID(ctx context.Context, target agent.Target,
	connectionID string) (json.RawMessage, error) {
	return g.sendTargetedID(ctx, commands.AgentGetConnectionsByConnectionID, target, connectionID)
}

// SendCredentialOffer sends a credential offer over an existing connection.
func (g *Gateway) SendCredentialOffer(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentSendCredentialCreateOffer, target, payload)
}

// SendOutOfBandCredentialOffer sends a connection-less credential offer.
func (g *Gateway) SendOutOfBandCredentialOffer(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentOutOfBandCredentialOffer, target, payload)
}

// GetIssuedCredentials lists the agent's credential exchange records.
func (g *Gateway) GetIssuedCredentials(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentGetAllIssuedCredentials, target, nil)
}

// SendProofRequest sends a proof request over an existing connection.
func (g *Gateway) SendProofRequest(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentSendProofRequest, target, payload)
}

// SendOutOfBandProofRequest sends a connection-less proof request.
func (g *Gateway) SendOutOfBandProofRequest(ctx context.Context, target agent.Target,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentSendOutOfBandProofRequest, target, payload)
}

// GetProofPresentations lists the agent's proof exchange records.
func (g *Gateway) GetProofPresentations(ctx context.Context, target agent.Target) (json.RawMessage, error) {
	return g.sendTargeted(ctx, commands.AgentGetProofPresentations, target, nil)
}

// GetProofPresentationByID resolves a single proof exchange record.
func (g *Gateway) GetProofPresentationByID(ctx context.Context, target agent.Target,
	proofID string) (json.RawMessage, error) {
	return g.sendTargetedID(ctx, commands.AgentGetProofPresentationByID, target, proofID)
}

// VerifyPresentation verifies a received presentation.
func (g *Gateway) VerifyPresentation(ctx context.Context, target agent.Target,
	proofID string) (json.RawMessage, error) {
	return g.sendTargetedID(ctx, commands.AgentVerifyPresentation, target, proofID)
}

// GetProofFormData returns the revealed attributes of a presentation.
func (g *Gateway) GetProofFormData(ctx context.Context, target agent.Target,
	proofID string) (json.RawMessage, error) {
	return g.sendTargetedID(ctx, commands.AgentProofFormData, target, proofID)
}

// RequestSchemaEndorsement drafts a schema write and forwards it for endorsement.
func (g *Gateway) RequestSchemaEndorsement(ctx context.Context, target agent.Target, author string,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendEndorsementRequest(ctx, commands.AgentSchemaEndorsementRequest, target, author, payload)
}

// RequestCredDefEndorsement drafts a credential definition write and
// forwards it for endorsement.
func (g *Gateway) RequestCredDefEndorsement(ctx context.Context, target agent.Target, author string,
	payload json.RawMessage) (json.RawMessage, error) {
	return g.sendEndorsementRequest(ctx, commands.AgentCredDefEndorsementRequest, target, author, payload)
}

// SignTransaction applies the endorser's signature to a transaction.
func (g *Gateway) SignTransaction(ctx context.Context, target agent.Target, transactionID,
	signerDID string) (json.RawMessage, error) {
	payload, err := json.Marshal(&commands.SignTransactionPayload{
		Target:        target,
		TransactionID: transactionID,
		SignerDID:     signerDID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal sign transaction payload: %w", err)
	}

	return g.Send(ctx, commands.AgentSignTransaction, payload)
}

// SubmitTransaction writes a signed transaction to the ledger.
func (g *Gateway) SubmitTransaction(ctx context.Context, target agent.Target,
	transactionID string) (json.RawMessage, error) {
	payload, err := json.Marshal(&commands.SubmitTransactionPayload{
		Target:        target,
		TransactionID: transactionID,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal submit transaction payload: %w", err)
	}

	return g.Send(ctx, commands.AgentSubmitTransaction, payload)
}

// GetEndorsementTransaction returns the current view of a transaction.
func (g *Gateway) GetEndorsementTransaction(ctx context.Context, transactionID string) (json.RawMessage, error) {
	payload, err := json.Marshal(&commands.TransactionIDPayload{TransactionID: transactionID})
	if err != nil {
		return nil, fmt.Errorf("marshal transaction id payload: %w", err)
	}

	return g.Send(ctx, commands.AgentGetEndorsementTransaction, payload)
}

func (g *Gateway) sendTargeted(ctx context.Context, command string, target agent.Target,
	body json.RawMessage) (json.RawMessage, error) {
	payload, err := json.Marshal(&commands.TargetedPayload{Target: target, Payload: body})
	if err != nil {
		return nil, fmt.Errorf("marshal payload for command [%s]: %w", command, err)
	}

	return g.Send(ctx, command, payload)
}

func (g *Gateway) sendTargetedID(ctx context.Context, command string, target agent.Target,
	id string) (json.RawMessage, error) {
	payload, err := json.Marshal(&commands.TargetedIDPayload{Target: target, ID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal payload for command [%s]: %w", command, err)
	}

	return g.Send(ctx, command, payload)
}

func (g *Gateway) sendEndorsementRequest(ctx context.Context, command string, target agent.Target,
	author string, body json.RawMessage) (json.RawMessage, error) {
	payload, err := json.Marshal(&commands.EndorsementRequestPayload{
		Target:  target,
		Author:  author,
		Payload: body,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload for command [%s]: %w", command, err)
	}

	return g.Send(ctx, command, payload)
}
