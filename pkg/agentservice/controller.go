/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agentservice binds the command catalog to the agent-facing
// services. It is the messaging-side analogue of an HTTP controller:
// decode the payload, call the service, encode the result.
package agentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/commands"
	"github.com/credentia/platform/pkg/messaging/router"
	"github.com/credentia/platform/pkg/messaging/spi"
	"github.com/credentia/platform/pkg/service/endorsement"
	"github.com/credentia/platform/pkg/service/exchange"
	"github.com/credentia/platform/pkg/service/ledger"
	"github.com/credentia/platform/pkg/service/wallet"
)

type endorsementService interface {
	CreateDraft(ctx context.Context, author string, payloadType endorsement.PayloadType,
		payload json.RawMessage) (*endorsement.Transaction, error)
	RequestEndorsement(ctx context.Context, txID endorsement.TxID, target agent.Target) (*endorsement.Transaction, error)
	Sign(ctx context.Context, txID endorsement.TxID, target agent.Target, signerDID string) (*endorsement.Transaction, error)
	Submit(ctx context.Context, txID endorsement.TxID, target agent.Target) (*endorsement.Transaction, error)
	GetTransaction(ctx context.Context, txID endorsement.TxID) (*endorsement.Transaction, error)
}

// Config holds the services the controller dispatches to.
type Config struct {
	WalletService      *wallet.Service
	LedgerService      *ledger.Service
	ExchangeService    *exchange.Service
	EndorsementService endorsementService
}

// Controller registers one handler per catalog command.
type Controller struct {
	walletSvc      *wallet.Service
	ledgerSvc      *ledger.Service
	exchangeSvc    *exchange.Service
	endorsementSvc endorsementService
}

// NewController returns a new Controller instance.
func NewController(config *Config) (*Controller, error) {
	if config.WalletService == nil || config.LedgerService == nil ||
		config.ExchangeService == nil || config.EndorsementService == nil {
		return nil, errors.New("all services are required")
	}

	return &Controller{
		walletSvc:      config.WalletService,
		ledgerSvc:      config.LedgerService,
		exchangeSvc:    config.ExchangeService,
		endorsementSvc: config.EndorsementService,
	}, nil
}

// Bind registers every catalog command on the given builder. The catalog's
// schemas are attached so payloads are validated before the handlers run.
func (c *Controller) Bind(builder *router.Builder) error {
	handlers := map[string]router.Handler{
		commands.AgentSpinup:  c.agentSpinup,
		commands.CreateTenant: c.createTenant,
		commands.DeleteWallet: c.deleteWallet,
		commands.AgentHealth:  c.agentHealth,

		commands.AgentCreateSchema:               c.createSchema,
		commands.AgentGetSchema:                  c.getSchema,
		commands.AgentCreateCredentialDefinition: c.createCredentialDefinition,
		commands.AgentGetCredentialDefinition:    c.getCredentialDefinition,

		commands.AgentCreateConnectionLegacyInvitation: c.createConnectionInvitation,
		commands.AgentGetAllConnections:                c.getConnections,
		commands.AgentGetConnectionsByConnectionID:     c.getConnectionByID,

		commands.AgentSendCredentialCreateOffer: c.sendCredentialOffer,
		commands.AgentOutOfBandCredentialOffer:  c.sendOutOfBandCredentialOffer,
		commands.AgentGetAllIssuedCredentials:   c.getIssuedCredentials,

		commands.AgentSendProofRequest:          c.sendProofRequest,
		commands.AgentSendOutOfBandProofRequest: c.sendOutOfBandProofRequest,
		commands.AgentGetProofPresentations:     c.getProofPresentations,
		commands.AgentGetProofPresentationByID:  c.getProofPresentationByID,
		commands.AgentVerifyPresentation:        c.verifyPresentation,
		commands.AgentProofFormData:             c.getProofFormData,

		commands.AgentSchemaEndorsementRequest:  c.schemaEndorsementRequest,
		commands.AgentCredDefEndorsementRequest: c.credDefEndorsementRequest,
		commands.AgentSignTransaction:           c.signTransaction,
		commands.AgentSubmitTransaction:         c.submitTransaction,
		commands.AgentGetEndorsementTransaction: c.getEndorsementTransaction,
	}

	for _, name := range commands.RevocationCommands() {
		handlers[name] = unimplemented(name)
	}

	for name, handler := range handlers {
		entry, ok := commands.Catalog[name]
		if !ok {
			return fmt.Errorf("command [%s] is not in the catalog", name)
		}

		var err error

		if entry.Schema != "" {
			err = builder.RegisterWithSchema(name, entry.Schema, handler)
		} else {
			err = builder.Register(name, handler)
		}

		if err != nil {
			return fmt.Errorf("register command [%s]: %w", name, err)
		}
	}

	return nil
}

func (c *Controller) agentSpinup(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	status, err := c.walletSvc.ProvisionAgent(ctx, req.Target, req.Payload)
	if err != nil {
		return nil, err
	}

	return encode(status)
}

func (c *Controller) createTenant(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.walletSvc.CreateTenant(ctx, req.Target, req.Payload)
}

func (c *Controller) deleteWallet(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.walletSvc.DeleteWallet(ctx, req.Target)
}

func (c *Controller) agentHealth(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.walletSvc.Health(ctx, req.Target)
}

func (c *Controller) createSchema(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.ledgerSvc.CreateSchema(ctx, req.Target, req.Payload)
}

func (c *Controller) getSchema(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.ledgerSvc.GetSchema(ctx, req.Target, req.ID)
}

func (c *Controller) createCredentialDefinition(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.ledgerSvc.CreateCredentialDefinition(ctx, req.Target, req.Payload)
}

func (c *Controller) getCredentialDefinition(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.ledgerSvc.GetCredentialDefinition(ctx, req.Target, req.ID)
}

func (c *Controller) createConnectionInvitation(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	result, err := c.exchangeSvc.CreateConnectionInvitation(ctx, req.Target, req.Payload)
	if err != nil {
		return nil, err
	}

	return encode(result)
}

func (c *Controller) getConnections(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.exchangeSvc.GetConnections(ctx, req.Target)
}

func (c *Controller) getConnectionByID(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.exchangeSvc.GetConnectionByID(ctx, req.Target, req.ID)
}

func (c *Controller) sendCredentialOffer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	result, err := c.exchangeSvc.SendCredentialOffer(ctx, req.Target, req.Payload)
	if err != nil {
		return nil, err
	}

	return encode(result)
}

func (c *Controller) sendOutOfBandCredentialOffer(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	result, err := c.exchangeSvc.SendOutOfBandCredentialOffer(ctx, req.Target, req.Payload)
	if err != nil {
		return nil, err
	}

	return encode(result)
}

func (c *Controller) getIssuedCredentials(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.exchangeSvc.GetIssuedCredentials(ctx, req.Target)
}

func (c *Controller) sendProofRequest(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	result, err := c.exchangeSvc.SendProofRequest(ctx, req.Target, req.Payload)
	if err != nil {
		return nil, err
	}

	return encode(result)
}

func (c *Controller) sendOutOfBandProofRequest(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	result, err := c.exchangeSvc.SendOutOfBandProofRequest(ctx, req.Target, req.Payload)
	if err != nil {
		return nil, err
	}

	return encode(result)
}

func (c *Controller) getProofPresentations(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.exchangeSvc.GetProofPresentations(ctx, req.Target)
}

func (c *Controller) getProofPresentationByID(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.exchangeSvc.GetProofPresentationByID(ctx, req.Target, req.ID)
}

func (c *Controller) verifyPresentation(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	result, err := c.exchangeSvc.VerifyPresentation(ctx, req.Target, req.ID)
	if err != nil {
		return nil, err
	}

	return encode(result)
}

func (c *Controller) getProofFormData(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TargetedIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	return c.exchangeSvc.GetProofFormData(ctx, req.Target, req.ID)
}

func (c *Controller) schemaEndorsementRequest(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.endorsementRequest(ctx, payload, endorsement.PayloadTypeSchema)
}

func (c *Controller) credDefEndorsementRequest(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.endorsementRequest(ctx, payload, endorsement.PayloadTypeCredentialDefinition)
}

// endorsementRequest drafts the write and immediately forwards it for
// endorsement. If the endorsement endpoint is unavailable the draft
// remains stored for a later retry of the forward step.
func (c *Controller) endorsementRequest(ctx context.Context, payload json.RawMessage,
	payloadType endorsement.PayloadType) (json.RawMessage, error) {
	req := &commands.EndorsementRequestPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	tx, err := c.endorsementSvc.CreateDraft(ctx, req.Author, payloadType, req.Payload)
	if err != nil {
		return nil, err
	}

	tx, err = c.endorsementSvc.RequestEndorsement(ctx, tx.ID, req.Target)
	if err != nil {
		return nil, err
	}

	return encodeTransaction(tx)
}

func (c *Controller) signTransaction(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.SignTransactionPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	tx, err := c.endorsementSvc.Sign(ctx, endorsement.TxID(req.TransactionID), req.Target, req.SignerDID)
	if err != nil {
		return nil, err
	}

	return encodeTransaction(tx)
}

func (c *Controller) submitTransaction(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.SubmitTransactionPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	tx, err := c.endorsementSvc.Submit(ctx, endorsement.TxID(req.TransactionID), req.Target)
	if err != nil {
		return nil, err
	}

	return encodeTransaction(tx)
}

func (c *Controller) getEndorsementTransaction(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req := &commands.TransactionIDPayload{}
	if err := decode(payload, req); err != nil {
		return nil, err
	}

	tx, err := c.endorsementSvc.GetTransaction(ctx, endorsement.TxID(req.TransactionID))
	if err != nil {
		return nil, err
	}

	return encodeTransaction(tx)
}

func unimplemented(name string) router.Handler {
	return func(_ context.Context, _ json.RawMessage) (json.RawMessage, error) {
		return nil, spi.NewError(spi.Unimplemented, "command [%s] is a reserved extension point", name)
	}
}

func decode(payload json.RawMessage, target interface{}) error {
	if err := json.Unmarshal(payload, target); err != nil {
		return spi.NewError(spi.InvalidPayload, "decode payload: %v", err)
	}

	return nil
}

func encode(result interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	return body, nil
}

type transactionView struct {
	TransactionID string          `json:"transactionId"`
	Author        string          `json:"author"`
	PayloadType   string          `json:"payloadType"`
	State         string          `json:"state"`
	LedgerResult  json.RawMessage `json:"ledgerResult,omitempty"`
	FailureReason string          `json:"failureReason,omitempty"`
}

func encodeTransaction(tx *endorsement.Transaction) (json.RawMessage, error) {
	return encode(&transactionView{
		TransactionID: string(tx.ID),
		Author:        tx.Author,
		PayloadType:   string(tx.PayloadType),
		State:         tx.State.String(),
		LedgerResult:  tx.LedgerResult,
		FailureReason: tx.FailureReason,
	})
}
