/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endorsement

import (
	"github.com/credentia/platform/pkg/messaging/spi"
)

// validateStateTransition enforces the monotonic endorsement state
// machine. Submitted and failed are terminal: no transition out of them
// ever succeeds, so a new draft is required to retry a rejected write.
func validateStateTransition(oldState, newState TransactionState) error {
	if oldState == TransactionStateDrafted &&
		newState == TransactionStateEndorsementRequested {
		return nil
	}

	if oldState == TransactionStateEndorsementRequested &&
		newState == TransactionStateSigned {
		return nil
	}

	if oldState == TransactionStateSigned &&
		newState == TransactionStateSubmitted {
		return nil
	}

	// Failed is reachable from any non-terminal state.
	if newState == TransactionStateFailed &&
		oldState != TransactionStateSubmitted && oldState != TransactionStateFailed {
		return nil
	}

	return spi.NewError(spi.InvalidTransactionState,
		"transition from %s to %s is not permitted", oldState, newState)
}
