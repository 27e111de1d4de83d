/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endorsement

import (
	"encoding/json"
	"time"
)

// TxID defines type for endorsement transaction ID.
type TxID string

// TransactionState of an endorsement transaction.
type TransactionState int16

const (
	TransactionStateUnknown              = TransactionState(0)
	TransactionStateDrafted              = TransactionState(1)
	TransactionStateEndorsementRequested = TransactionState(2)
	TransactionStateSigned               = TransactionState(3)
	TransactionStateSubmitted            = TransactionState(4) // terminal
	TransactionStateFailed               = TransactionState(5) // terminal
)

// String returns the state name as stored and logged.
func (s TransactionState) String() string {
	switch s {
	case TransactionStateDrafted:
		return "drafted"
	case TransactionStateEndorsementRequested:
		return "endorsement_requested"
	case TransactionStateSigned:
		return "signed"
	case TransactionStateSubmitted:
		return "submitted"
	case TransactionStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PayloadType discriminates the kind of ledger write being endorsed.
type PayloadType string

const (
	PayloadTypeSchema               PayloadType = "schema"
	PayloadTypeCredentialDefinition PayloadType = "credential_definition"
)

// Transaction is a pending ledger write that requires a second-party
// co-signature before submission. The author drafts it, an endorser signs
// it and the author submits it; the transaction is persisted between steps
// and its state advances monotonically.
type Transaction struct {
	ID TxID
	TransactionData
}

// TransactionData is the transaction data stored in the underlying storage.
type TransactionData struct {
	Author      string
	PayloadType PayloadType

	// Payload is the unsigned ledger write as drafted by the author.
	Payload json.RawMessage

	State TransactionState

	// StateHistory records every state the transaction has reached, in
	// order. A submitted transaction always shows a signed state here.
	StateHistory []TransactionState

	// EndorsementRequest is the agent-built signature request, set once the
	// draft has been forwarded for endorsement.
	EndorsementRequest json.RawMessage

	// EndorserSignature is set when the endorser has co-signed.
	EndorserSignature json.RawMessage

	// LedgerResult is the ledger acceptance result, set on submission.
	LedgerResult json.RawMessage

	// FailureReason carries the ledger rejection reason for failed
	// transactions.
	FailureReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}
