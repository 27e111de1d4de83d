/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endorsement

import "errors"

var (
	ErrDataNotFound    = errors.New("data not found")
	ErrPayloadRequired = errors.New("transaction payload is required")
	ErrAuthorRequired  = errors.New("transaction author is required")
)
