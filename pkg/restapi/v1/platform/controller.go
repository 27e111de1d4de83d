/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package platform -source=controller.go -mock_names commandGateway=MockCommandGateway

// Package platform exposes the command catalog over HTTP. Each route is a
// thin shim: extract the agent target, forward the body, render the reply.
package platform

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credentia/platform/pkg/client/agent"
)

const (
	agentURLHeader    = "X-Agent-URL"
	agentAPIKeyHeader = "X-Agent-API-Key" //nolint:gosec
)

type commandGateway interface {
	ProvisionAgent(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	CreateTenant(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	DeleteWallet(ctx context.Context, target agent.Target) (json.RawMessage, error)
	AgentHealth(ctx context.Context, target agent.Target) (json.RawMessage, error)
	CreateSchema(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetSchema(ctx context.Context, target agent.Target, schemaID string) (json.RawMessage, error)
	CreateCredentialDefinition(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetCredentialDefinition(ctx context.Context, target agent.Target, credDefID string) (json.RawMessage, error)
	CreateConnectionInvitation(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	GetConnections(ctx context.Context, target agent.Target) (json.RawMessage, error)
	GetConnectionByID(ctx context.Context, target agent.Target, connectionID string) (json.RawMessage, error)
	SendCredentialOffer(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	SendOutOfBandCredentialOffer(ctx context.Context, target agent.Target,
		payload json.RawMessage) (json.RawMessage, error)
	GetIssuedCredentials(ctx context.Context, target agent.Target) (json.RawMessage, error)
	SendProofRequest(ctx context.Context, target agent.Target, payload json.RawMessage) (json.RawMessage, error)
	SendOutOfBandProofRequest(ctx context.Context, target agent.Target,
		payload json.RawMessage) (json.RawMessage, error)
	GetProofPresentations(ctx context.Context, target agent.Target) (json.RawMessage, error)
	GetProofPresentationByID(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error)
	VerifyPresentation(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error)
	GetProofFormData(ctx context.Context, target agent.Target, proofID string) (json.RawMessage, error)
	RequestSchemaEndorsement(ctx context.Context, target agent.Target, author string,
		payload json.RawMessage) (json.RawMessage, error)
	RequestCredDefEndorsement(ctx context.Context, target agent.Target, author string,
		payload json.RawMessage) (json.RawMessage, error)
	SignTransaction(ctx context.Context, target agent.Target, transactionID, signerDID string) (json.RawMessage, error)
	SubmitTransaction(ctx context.Context, target agent.Target, transactionID string) (json.RawMessage, error)
	GetEndorsementTransaction(ctx context.Context, transactionID string) (json.RawMessage, error)
}

// Config holds the configuration for the rest controller.
type Config struct {
	Gateway commandGateway
}

// Controller for the platform REST API.
type Controller struct {
	gateway commandGateway
}

// NewController creates a new Controller instance.
func NewController(config *Config) *Controller {
	return &Controller{gateway: config.Gateway}
}

// RegisterRoutes binds the catalog routes on the given router group.
func (c *Controller) RegisterRoutes(g *echo.Group) {
	g.POST("/agents", c.PostAgents)
	g.POST("/agents/tenants", c.PostTenants)
	g.DELETE("/agents/wallet", c.DeleteWallet)
	g.GET("/agents/health", c.GetAgentHealth)

	g.POST("/ledger/schemas", c.PostSchemas)
	g.GET("/ledger/schemas/:schemaId", c.GetSchema)
	g.POST("/ledger/credential-definitions", c.PostCredentialDefinitions)
	g.GET("/ledger/credential-definitions/:credDefId", c.GetCredentialDefinition)

	g.POST("/connections/invitations", c.PostConnectionInvitations)
	g.GET("/connections", c.GetConnections)
	g.GET("/connections/:connectionId", c.GetConnectionByID)

	g.POST("/credentials/offers", c.PostCredentialOffers)
	g.POST("/credentials/offers/oob", c.PostOutOfBandCredentialOffers)
	g.GET("/credentials/issued", c.GetIssuedCredentials)

	g.POST("/proofs/requests", c.PostProofRequests)
	g.POST("/proofs/requests/oob", c.PostOutOfBandProofRequests)
	g.GET("/proofs", c.GetProofPresentations)
	g.GET("/proofs/:proofId", c.GetProofPresentationByID)
	g.POST("/proofs/:proofId/verify", c.PostVerifyPresentation)
	g.GET("/proofs/:proofId/form-data", c.GetProofFormData)

	g.POST("/endorsement/schemas", c.PostSchemaEndorsements)
	g.POST("/endorsement/credential-definitions", c.PostCredDefEndorsements)
	g.POST("/endorsement/transactions/:txId/sign", c.PostSignTransaction)
	g.POST("/endorsement/transactions/:txId/submit", c.PostSubmitTransaction)
	g.GET("/endorsement/transactions/:txId", c.GetEndorsementTransaction)
}

// PostAgents provisions a cloud agent for a tenant.
func (c *Controller) PostAgents(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.ProvisionAgent)
}

// PostTenants creates a tenant on a multi-tenant agent.
func (c *Controller) PostTenants(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.CreateTenant)
}

// DeleteWallet removes the tenant wallet from its agent.
func (c *Controller) DeleteWallet(ctx echo.Context) error {
	return c.forward(ctx, c.gateway.DeleteWallet)
}

// GetAgentHealth reports the liveness of the tenant's agent.
func (c *Controller) GetAgentHealth(ctx echo.Context) error {
	return c.forward(ctx, c.gateway.AgentHealth)
}

// PostSchemas writes a schema directly to the ledger.
func (c *Controller) PostSchemas(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.CreateSchema)
}

// GetSchema resolves a schema by its ledger ID.
func (c *Controller) GetSchema(ctx echo.Context) error {
	return c.forwardID(ctx, ctx.Param("schemaId"), c.gateway.GetSchema)
}

// PostCredentialDefinitions writes a credential definition directly to the ledger.
func (c *Controller) PostCredentialDefinitions(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.CreateCredentialDefinition)
}

// GetCredentialDefinition resolves a credential definition by its ledger ID.
func (c *Controller) GetCredentialDefinition(ctx echo.Context) error {
	return c.forwardID(ctx, ctx.Param("credDefId"), c.gateway.GetCredentialDefinition)
}

// PostConnectionInvitations creates a connection invitation on the agent.
func (c *Controller) PostConnectionInvitations(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.CreateConnectionInvitation)
}

// GetConnections lists the agent's connection records.
func (c *Controller) GetConnections(ctx echo.Context) error {
	return c.forward(ctx, c.gateway.GetConnections)
}

// GetConnectionByID resolves a single connection record.
func (c *Controller) GetConnectionByID(ctx echo.Context) error {
	return c.forwardID(ctx, ctx.Param("connectionId"), c.gateway.GetConnectionByID)
}

// PostCredentialOffers sends a credential offer over an existing connection.
func (c *Controller) PostCredentialOffers(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.SendCredentialOffer)
}

// PostOutOfBandCredentialOffers sends a connection-less credential offer.
func (c *Controller) PostOutOfBandCredentialOffers(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.SendOutOfBandCredentialOffer)
}

// GetIssuedCredentials lists the agent's credential exchange records.
func (c *Controller) GetIssuedCredentials(ctx echo.Context) error {
	return c.forward(ctx, c.gateway.GetIssuedCredentials)
}

// PostProofRequests sends a proof request over an existing connection.
func (c *Controller) PostProofRequests(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.SendProofRequest)
}

// PostOutOfBandProofRequests sends a connection-less proof request.
func (c *Controller) PostOutOfBandProofRequests(ctx echo.Context) error {
	return c.forwardBody(ctx, c.gateway.SendOutOfBandProofRequest)
}

// GetProofPresentations lists the agent's proof exchange records.
func (c *Controller) GetProofPresentations(ctx echo.Context) error {
	return c.forward(ctx, c.gateway.GetProofPresentations)
}

// GetProofPresentationByID resolves a single proof exchange record.
func (c *Controller) GetProofPresentationByID(ctx echo.Context) error {
	return c.forwardID(ctx, ctx.Param("proofId"), c.gateway.GetProofPresentationByID)
}

// PostVerifyPresentation verifies a received presentation.
func (c *Controller) PostVerifyPresentation(ctx echo.Context) error {
	return c.forwardID(ctx, ctx.Param("proofId"), c.gateway.VerifyPresentation)
}

// GetProofFormData returns the revealed attributes of a presentation.
func (c *Controller) GetProofFormData(ctx echo.Context) error {
	return c.forwardID(ctx, ctx.Param("proofId"), c.gateway.GetProofFormData)
}

// PostSchemaEndorsements drafts a schema write and forwards it for endorsement.
func (c *Controller) PostSchemaEndorsements(ctx echo.Context) error {
	return c.forwardEndorsement(ctx, c.gateway.RequestSchemaEndorsement)
}

// PostCredDefEndorsements drafts a credential definition write and forwards
// it for endorsement.
func (c *Controller) PostCredDefEndorsements(ctx echo.Context) error {
	return c.forwardEndorsement(ctx, c.gateway.RequestCredDefEndorsement)
}

// PostSignTransaction applies the endorser's signature to a transaction.
func (c *Controller) PostSignTransaction(ctx echo.Context) error {
	var req struct {
		SignerDID string `json:"signerDid"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	body, err := c.gateway.SignTransaction(ctx.Request().Context(), targetFrom(ctx),
		ctx.Param("txId"), req.SignerDID)
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

// PostSubmitTransaction writes a signed transaction to the ledger.
func (c *Controller) PostSubmitTransaction(ctx echo.Context) error {
	body, err := c.gateway.SubmitTransaction(ctx.Request().Context(), targetFrom(ctx), ctx.Param("txId"))
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

// GetEndorsementTransaction returns the current view of a transaction.
func (c *Controller) GetEndorsementTransaction(ctx echo.Context) error {
	body, err := c.gateway.GetEndorsementTransaction(ctx.Request().Context(), ctx.Param("txId"))
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

func (c *Controller) forwardBody(ctx echo.Context,
	fn func(context.Context, agent.Target, json.RawMessage) (json.RawMessage, error)) error {
	payload, err := readBody(ctx)
	if err != nil {
		return err
	}

	body, err := fn(ctx.Request().Context(), targetFrom(ctx), payload)
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

func (c *Controller) forward(ctx echo.Context,
	fn func(context.Context, agent.Target) (json.RawMessage, error)) error {
	body, err := fn(ctx.Request().Context(), targetFrom(ctx))
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

func (c *Controller) forwardID(ctx echo.Context, id string,
	fn func(context.Context, agent.Target, string) (json.RawMessage, error)) error {
	body, err := fn(ctx.Request().Context(), targetFrom(ctx), id)
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

func (c *Controller) forwardEndorsement(ctx echo.Context,
	fn func(context.Context, agent.Target, string, json.RawMessage) (json.RawMessage, error)) error {
	var req struct {
		Author  string          `json:"author"`
		Payload json.RawMessage `json:"payload"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	body, err := fn(ctx.Request().Context(), targetFrom(ctx), req.Author, req.Payload)
	if err != nil {
		return err
	}

	return respond(ctx, body)
}

// targetFrom reads the tenant agent address off the request headers. The
// surrounding deployment resolves tenants to agents before this API.
func targetFrom(ctx echo.Context) agent.Target {
	return agent.Target{
		URL:    ctx.Request().Header.Get(agentURLHeader),
		APIKey: ctx.Request().Header.Get(agentAPIKeyHeader),
	}
}

func readBody(ctx echo.Context) (json.RawMessage, error) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "read request body").SetInternal(err)
	}

	return body, nil
}

func respond(ctx echo.Context, body json.RawMessage) error {
	if len(body) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSONBlob(http.StatusOK, body)
}
