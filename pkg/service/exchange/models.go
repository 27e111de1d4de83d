/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import "encoding/json"

// InvitationResult is the normalized result of creating a connection
// invitation.
type InvitationResult struct {
	ConnectionID  string          `json:"connectionId,omitempty"`
	InvitationURL string          `json:"invitationUrl,omitempty"`
	Invitation    json.RawMessage `json:"invitation,omitempty"`
}

// CredentialExchangeResult correlates a local offer to the agent-side
// credential exchange record. The record's asynchronous progression (the
// holder accepting the offer) is not tracked here; status must be queried
// separately or delivered via a webhook collaborator.
type CredentialExchangeResult struct {
	CredentialExchangeID string          `json:"credentialExchangeId,omitempty"`
	State                string          `json:"state,omitempty"`
	InvitationURL        string          `json:"invitationUrl,omitempty"`
	Record               json.RawMessage `json:"record,omitempty"`
}

// ProofExchangeResult correlates a local proof request to the agent-side
// proof exchange record.
type ProofExchangeResult struct {
	ProofExchangeID string          `json:"proofExchangeId,omitempty"`
	State           string          `json:"state,omitempty"`
	InvitationURL   string          `json:"invitationUrl,omitempty"`
	Record          json.RawMessage `json:"record,omitempty"`
}

// VerificationResult is the normalized outcome of presentation
// verification.
type VerificationResult struct {
	ProofExchangeID string          `json:"proofExchangeId,omitempty"`
	Verified        bool            `json:"verified"`
	State           string          `json:"state,omitempty"`
	Record          json.RawMessage `json:"record,omitempty"`
}
