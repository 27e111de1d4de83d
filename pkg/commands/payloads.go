/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

import (
	"encoding/json"

	"github.com/credentia/platform/pkg/client/agent"
)

// TargetedPayload wraps a command body with the tenant agent address. The
// gateway resolves the tenant's agent URL and API key before issuing the
// command; services never look them up themselves.
type TargetedPayload struct {
	agent.Target

	Payload json.RawMessage `json:"payload,omitempty"`
}

// TargetedIDPayload addresses an agent-side record by identifier.
type TargetedIDPayload struct {
	agent.Target

	ID string `json:"id"`
}

// EndorsementRequestPayload drafts a ledger write and forwards it for
// endorsement in one command.
type EndorsementRequestPayload struct {
	agent.Target

	Author  string          `json:"author"`
	Payload json.RawMessage `json:"payload"`
}

// SignTransactionPayload co-signs a pending endorsement transaction.
type SignTransactionPayload struct {
	agent.Target

	TransactionID string `json:"transactionId"`
	SignerDID     string `json:"signerDid"`
}

// SubmitTransactionPayload submits a signed endorsement transaction.
type SubmitTransactionPayload struct {
	agent.Target

	TransactionID string `json:"transactionId"`
}

// TransactionIDPayload addresses an endorsement transaction.
type TransactionIDPayload struct {
	TransactionID string `json:"transactionId"`
}
