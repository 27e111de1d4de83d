/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agent provides the HTTP client for the external ledger-agent
// API. The agent is an opaque dependency: every tenant has its own base
// URL and API key, so both are passed per call rather than fixed at
// construction.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/messaging/spi"
)

var logger = log.New("agent-client")

const (
	healthPath                    = "/agent"
	provisionPath                 = "/agent/provision"
	createTenantPath              = "/multi-tenancy/create-tenant"
	walletPath                    = "/wallet"
	schemasPath                   = "/schemas"
	credDefsPath                  = "/credential-definitions"
	createInvitationPath          = "/connections/create-invitation"
	connectionsPath               = "/connections"
	createOfferPath               = "/credentials/create-offer"
	createOfferOOBPath            = "/credentials/create-offer-oob"
	credentialsPath               = "/credentials"
	requestProofPath              = "/proofs/request-proof"
	createProofRequestPath        = "/proofs/create-request"
	proofsPath                    = "/proofs"
	transactionsCreateRequestPath = "/transactions/create-request"
	transactionsEndorsePath       = "/transactions/endorse"
	transactionsWritePath         = "/transactions/write"

	authorizationHeader = "Authorization"
	contentType         = "application/json"
)

// Target identifies the agent instance a call is addressed to.
type Target struct {
	URL    string `json:"url"`
	APIKey string `json:"apiKey"`
}

// HTTPClient interface for the http client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the ledger-agent API client.
type Client struct {
	httpClient HTTPClient
}

// Opt represents Client`s option.
type Opt func(*Client)

// WithHTTPClient allows providing HTTP client.
func WithHTTPClient(client HTTPClient) Opt {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new agent client.
func NewClient(opts ...Opt) *Client {
	client := &Client{
		httpClient: &http.Client{},
	}

	for _, fn := range opts {
		fn(client)
	}

	return client
}

// Health checks agent liveness.
func (c *Client) Health(ctx context.Context, target Target) (json.RawMessage, error) {
	return c.get(ctx, target, healthPath)
}

// ProvisionWallet spins up an agent wallet for an organization.
func (c *Client) ProvisionWallet(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, provisionPath, payload)
}

// CreateTenant creates a tenant wallet on a shared (multi-tenant) agent.
func (c *Client) CreateTenant(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, createTenantPath, payload)
}

// DeleteWallet removes the tenant wallet.
func (c *Client) DeleteWallet(ctx context.Context, target Target) (json.RawMessage, error) {
	return c.do(ctx, target, http.MethodDelete, walletPath, nil)
}

// CreateSchema writes a schema to the ledger through the agent.
func (c *Client) CreateSchema(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, schemasPath, payload)
}

// GetSchema fetches a schema by its ledger identifier.
func (c *Client) GetSchema(ctx context.Context, target Target, schemaID string) (json.RawMessage, error) {
	return c.get(ctx, target, schemasPath+"/"+schemaID)
}

// CreateCredentialDefinition writes a credential definition to the ledger.
func (c *Client) CreateCredentialDefinition(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, credDefsPath, payload)
}

// GetCredentialDefinition fetches a credential definition by identifier.
func (c *Client) GetCredentialDefinition(ctx context.Context, target Target, credDefID string) (json.RawMessage, error) {
	return c.get(ctx, target, credDefsPath+"/"+credDefID)
}

// CreateLegacyInvitation creates a connection invitation.
func (c *Client) CreateLegacyInvitation(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, createInvitationPath, payload)
}

// GetConnections lists the agent's connection records.
func (c *Client) GetConnections(ctx context.Context, target Target) (json.RawMessage, error) {
	return c.get(ctx, target, connectionsPath)
}

// GetConnectionByID fetches a single connection record.
func (c *Client) GetConnectionByID(ctx context.Context, target Target, connectionID string) (json.RawMessage, error) {
	return c.get(ctx, target, connectionsPath+"/"+connectionID)
}

// CreateCredentialOffer sends a credential offer over an existing connection.
func (c *Client) CreateCredentialOffer(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, createOfferPath, payload)
}

// CreateOutOfBandCredentialOffer creates a connection-less credential offer.
func (c *Client) CreateOutOfBandCredentialOffer(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, createOfferOOBPath, payload)
}

// GetIssuedCredentials lists the agent's credential exchange records.
func (c *Client) GetIssuedCredentials(ctx context.Context, target Target) (json.RawMessage, error) {
	return c.get(ctx, target, credentialsPath)
}

// SendProofRequest sends a proof request over an existing connection.
func (c *Client) SendProofRequest(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, requestProofPath, payload)
}

// CreateOutOfBandProofRequest creates a connection-less proof request.
func (c *Client) CreateOutOfBandProofRequest(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, createProofRequestPath, payload)
}

// GetProofPresentations lists the agent's proof exchange records.
func (c *Client) GetProofPresentations(ctx context.Context, target Target) (json.RawMessage, error) {
	return c.get(ctx, target, proofsPath)
}

// GetProofPresentationByID fetches a single proof exchange record.
func (c *Client) GetProofPresentationByID(ctx context.Context, target Target, proofID string) (json.RawMessage, error) {
	return c.get(ctx, target, proofsPath+"/"+proofID)
}

// VerifyPresentation asks the agent to verify a received presentation.
func (c *Client) VerifyPresentation(ctx context.Context, target Target, proofID string) (json.RawMessage, error) {
	return c.post(ctx, target, proofsPath+"/"+proofID+"/verify", nil)
}

// GetProofFormData fetches the disclosed attributes of a presentation.
func (c *Client) GetProofFormData(ctx context.Context, target Target, proofID string) (json.RawMessage, error) {
	return c.get(ctx, target, proofsPath+"/"+proofID+"/form-data")
}

// CreateEndorsementRequest asks the agent to build an endorsement request
// for an unsigned ledger write.
func (c *Client) CreateEndorsementRequest(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, transactionsCreateRequestPath, payload)
}

// EndorseTransaction signs a pending endorsement request with the
// endorser's key.
func (c *Client) EndorseTransaction(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, transactionsEndorsePath, payload)
}

// WriteTransaction submits a signed transaction to the ledger.
func (c *Client) WriteTransaction(ctx context.Context, target Target, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, target, transactionsWritePath, payload)
}

func (c *Client) get(ctx context.Context, target Target, path string) (json.RawMessage, error) {
	return c.do(ctx, target, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, target Target, path string, payload json.RawMessage) (json.RawMessage, error) {
	return c.do(ctx, target, http.MethodPost, path, payload)
}

// do performs a single agent API call. A non-2xx answer maps to
// AgentOperationFailed carrying the upstream status and body; a transport
// failure is returned as a plain wrapped error so callers can apply their
// own taxonomy (Unreachable, EndorsementUnavailable).
func (c *Client) do(ctx context.Context, target Target, method, path string, payload json.RawMessage) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.URL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create agent request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)

	if target.APIKey != "" {
		req.Header.Set(authorizationHeader, "Bearer "+target.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent request [%s %s]: %w", method, path, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("failed to close response body", log.WithError(closeErr))
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read agent response [%s %s]: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("agent operation failed", logfields.WithAgentURL(target.URL),
			logfields.WithHTTPStatus(resp.StatusCode))

		return nil, newOperationError(method, path, resp.StatusCode, respBody)
	}

	return respBody, nil
}

type operationErrorDetails struct {
	Status int    `json:"status"`
	Body   string `json:"body,omitempty"`
}

func newOperationError(method, path string, status int, body []byte) *spi.Error {
	details, _ := json.Marshal(operationErrorDetails{ //nolint: errcheck
		Status: status,
		Body:   string(body),
	})

	return &spi.Error{
		Kind:    spi.AgentOperationFailed,
		Message: fmt.Sprintf("agent operation [%s %s] failed with status %d", method, path, status),
		Details: details,
	}
}
