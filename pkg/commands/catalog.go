/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package commands is the command catalog: the contract the gateway and
// the services agree on. Every entry names a stable command, the service
// topic it is dispatched to and, where the payload shape is fixed, a JSON
// schema that inbound payloads are validated against.
package commands

// Service topics.
const (
	// AgentServiceTopic is the topic the agent-facing service listens on.
	AgentServiceTopic = "platform.agent-service"
)

// Wallet lifecycle commands.
const (
	AgentSpinup  = "agent-spinup"
	CreateTenant = "create-tenant"
	DeleteWallet = "delete-wallet"
	AgentHealth  = "agent-health"
)

// Direct ledger commands.
const (
	AgentCreateSchema               = "agent-create-schema"
	AgentGetSchema                  = "agent-get-schema"
	AgentCreateCredentialDefinition = "agent-create-credential-definition"
	AgentGetCredentialDefinition    = "agent-get-credential-definition"
)

// Connection commands.
const (
	AgentCreateConnectionLegacyInvitation = "agent-create-connection-legacy-invitation"
	AgentGetAllConnections                = "agent-get-all-connections"
	AgentGetConnectionsByConnectionID     = "agent-get-connections-by-connectionId"
)

// Issuance commands.
const (
	AgentSendCredentialCreateOffer = "agent-send-credential-create-offer"
	AgentOutOfBandCredentialOffer  = "agent-out-of-band-credential-offer"
	AgentGetAllIssuedCredentials   = "agent-get-all-issued-credentials"
)

// Verification commands.
const (
	AgentSendProofRequest          = "agent-send-proof-request"
	AgentSendOutOfBandProofRequest = "agent-send-out-of-band-proof-request"
	AgentGetProofPresentations     = "agent-get-proof-presentations"
	AgentGetProofPresentationByID  = "agent-get-proof-presentation-by-id"
	AgentVerifyPresentation        = "agent-verify-presentation"
	AgentProofFormData             = "agent-proof-form-data"
)

// Endorsement commands.
const (
	AgentSchemaEndorsementRequest  = "agent-schema-endorsement-request"
	AgentCredDefEndorsementRequest = "agent-credDef-endorsement-request"
	AgentSignTransaction           = "agent-sign-transaction"
	AgentSubmitTransaction         = "agent-submit-transaction"
	AgentGetEndorsementTransaction = "agent-get-endorsement-transaction"
)

// Revocation registry commands. Reserved extension points: the registry
// lifecycle is part of the catalog but has no handler logic yet, so every
// one of these resolves to an Unimplemented failure.
const (
	AgentCreateRevocationRegistry    = "agent-create-revocation-registry"
	AgentPublishRevocationRegistry   = "agent-publish-revocation-registry"
	AgentUpdateRevocationRegistryURI = "agent-update-revocation-registry-uri"
	AgentGetRevocationRegistry       = "agent-get-revocation-registry"
)

// Entry describes one catalog command.
type Entry struct {
	// Topic the command is dispatched to.
	Topic string

	// Schema optionally constrains the payload; empty means the handler
	// does all validation.
	Schema string

	// Idempotent marks read-side commands that a caller may safely retry.
	Idempotent bool
}

// Catalog maps every command name to its entry. Registration code iterates
// over this map, so every name listed here is guaranteed a handler (or an
// Unimplemented stub) on its service.
var Catalog = map[string]Entry{ //nolint:gochecknoglobals
	AgentSpinup:  {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	CreateTenant: {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	DeleteWallet: {Topic: AgentServiceTopic, Schema: targetedSchema},
	AgentHealth:  {Topic: AgentServiceTopic, Schema: targetedSchema, Idempotent: true},

	AgentCreateSchema:               {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentGetSchema:                  {Topic: AgentServiceTopic, Schema: targetedIDSchema, Idempotent: true},
	AgentCreateCredentialDefinition: {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentGetCredentialDefinition:    {Topic: AgentServiceTopic, Schema: targetedIDSchema, Idempotent: true},

	AgentCreateConnectionLegacyInvitation: {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentGetAllConnections:                {Topic: AgentServiceTopic, Schema: targetedSchema, Idempotent: true},
	AgentGetConnectionsByConnectionID:     {Topic: AgentServiceTopic, Schema: targetedIDSchema, Idempotent: true},

	AgentSendCredentialCreateOffer: {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentOutOfBandCredentialOffer:  {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentGetAllIssuedCredentials:   {Topic: AgentServiceTopic, Schema: targetedSchema, Idempotent: true},

	AgentSendProofRequest:          {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentSendOutOfBandProofRequest: {Topic: AgentServiceTopic, Schema: targetedPayloadSchema},
	AgentGetProofPresentations:     {Topic: AgentServiceTopic, Schema: targetedSchema, Idempotent: true},
	AgentGetProofPresentationByID:  {Topic: AgentServiceTopic, Schema: targetedIDSchema, Idempotent: true},
	AgentVerifyPresentation:        {Topic: AgentServiceTopic, Schema: targetedIDSchema},
	AgentProofFormData:             {Topic: AgentServiceTopic, Schema: targetedIDSchema, Idempotent: true},

	AgentSchemaEndorsementRequest:  {Topic: AgentServiceTopic, Schema: endorsementRequestSchema},
	AgentCredDefEndorsementRequest: {Topic: AgentServiceTopic, Schema: endorsementRequestSchema},
	AgentSignTransaction:           {Topic: AgentServiceTopic, Schema: signTransactionSchema},
	AgentSubmitTransaction:         {Topic: AgentServiceTopic, Schema: submitTransactionSchema},
	AgentGetEndorsementTransaction: {Topic: AgentServiceTopic, Schema: transactionIDSchema, Idempotent: true},

	AgentCreateRevocationRegistry:    {Topic: AgentServiceTopic},
	AgentPublishRevocationRegistry:   {Topic: AgentServiceTopic},
	AgentUpdateRevocationRegistryURI: {Topic: AgentServiceTopic},
	AgentGetRevocationRegistry:       {Topic: AgentServiceTopic},
}

// RevocationCommands lists the reserved revocation registry commands.
func RevocationCommands() []string {
	return []string{
		AgentCreateRevocationRegistry,
		AgentPublishRevocationRegistry,
		AgentUpdateRevocationRegistryURI,
		AgentGetRevocationRegistry,
	}
}
