/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package commands

// JSON schemas enforced by the router before a handler runs. They pin the
// addressing fields only; command-specific bodies stay opaque and are
// validated by the receiving handler.
const (
	targetedSchema = `{
		"type": "object",
		"properties": {
			"url": {"type": "string", "minLength": 1},
			"apiKey": {"type": "string"}
		},
		"required": ["url"]
	}`

	targetedPayloadSchema = `{
		"type": "object",
		"properties": {
			"url": {"type": "string", "minLength": 1},
			"apiKey": {"type": "string"},
			"payload": {}
		},
		"required": ["url"]
	}`

	targetedIDSchema = `{
		"type": "object",
		"properties": {
			"url": {"type": "string", "minLength": 1},
			"apiKey": {"type": "string"},
			"id": {"type": "string", "minLength": 1}
		},
		"required": ["url", "id"]
	}`

	endorsementRequestSchema = `{
		"type": "object",
		"properties": {
			"url": {"type": "string", "minLength": 1},
			"apiKey": {"type": "string"},
			"author": {"type": "string", "minLength": 1},
			"payload": {"type": "object"}
		},
		"required": ["url", "author", "payload"]
	}`

	signTransactionSchema = `{
		"type": "object",
		"properties": {
			"url": {"type": "string", "minLength": 1},
			"apiKey": {"type": "string"},
			"transactionId": {"type": "string", "minLength": 1},
			"signerDid": {"type": "string", "minLength": 1}
		},
		"required": ["url", "transactionId", "signerDid"]
	}`

	submitTransactionSchema = `{
		"type": "object",
		"properties": {
			"url": {"type": "string", "minLength": 1},
			"apiKey": {"type": "string"},
			"transactionId": {"type": "string", "minLength": 1}
		},
		"required": ["url", "transactionId"]
	}`

	transactionIDSchema = `{
		"type": "object",
		"properties": {
			"transactionId": {"type": "string", "minLength": 1}
		},
		"required": ["transactionId"]
	}`
)
