/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package router maps command names to handler functions. Registration
// happens once at service startup through the Builder; the built Router is
// immutable and safe for concurrent dispatch.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/credentia/platform/internal/logfields"
	"github.com/credentia/platform/pkg/messaging/spi"
)

var logger = log.New("command-router")

// Handler executes a single command. It receives the raw payload and
// returns either a result body or an error. Errors of type *spi.Error keep
// their kind on the wire; anything else becomes HandlerError.
type Handler func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

type binding struct {
	handler Handler
	schema  *gojsonschema.Schema
}

// Builder accumulates command bindings and validates them for duplicates
// at build time.
type Builder struct {
	bindings map[string]binding
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		bindings: make(map[string]binding),
	}
}

// Register binds a command name to a handler. Binding the same name twice
// within one service fails with DuplicateCommand.
func (b *Builder) Register(name string, handler Handler) error {
	return b.register(name, handler, nil)
}

// RegisterWithSchema binds a command name to a handler and a JSON schema
// that inbound payloads are validated against before the handler runs.
func (b *Builder) RegisterWithSchema(name string, schemaJSON string, handler Handler) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return fmt.Errorf("compile schema for command [%s]: %w", name, err)
	}

	return b.register(name, handler, schema)
}

func (b *Builder) register(name string, handler Handler, schema *gojsonschema.Schema) error {
	if name == "" {
		return fmt.Errorf("register command: empty name")
	}

	if handler == nil {
		return fmt.Errorf("register command [%s]: nil handler", name)
	}

	if _, ok := b.bindings[name]; ok {
		return spi.NewError(spi.DuplicateCommand, "command [%s] is already registered", name)
	}

	b.bindings[name] = binding{handler: handler, schema: schema}

	return nil
}

// Build returns the immutable Router.
func (b *Builder) Build() *Router {
	bindings := make(map[string]binding, len(b.bindings))
	for name, bnd := range b.bindings {
		bindings[name] = bnd
	}

	return &Router{bindings: bindings}
}

// Router dispatches envelopes to their bound handlers. It never lets a
// handler failure escape: every outcome, including a panic, is captured
// into a Reply.
type Router struct {
	bindings map[string]binding
}

// Commands returns the registered command names.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}

	return names
}

// Dispatch looks up the envelope's command and invokes its handler,
// converting the outcome into exactly one Reply.
func (r *Router) Dispatch(ctx context.Context, envelope *spi.Envelope) *spi.Reply {
	bnd, ok := r.bindings[envelope.Command]
	if !ok {
		logger.Warn("received unknown command", logfields.WithCommand(envelope.Command))

		return spi.NewErrorReply(envelope.CorrelationID,
			spi.NewError(spi.UnknownCommand, "no handler registered for command [%s]", envelope.Command))
	}

	if bnd.schema != nil {
		if err := validatePayload(bnd.schema, envelope); err != nil {
			return spi.NewErrorReply(envelope.CorrelationID, err)
		}
	}

	body, err := r.invoke(ctx, bnd.handler, envelope)
	if err != nil {
		return spi.NewErrorReply(envelope.CorrelationID, err)
	}

	return spi.NewOKReply(envelope.CorrelationID, body)
}

func (r *Router) invoke(ctx context.Context, handler Handler, envelope *spi.Envelope) (body json.RawMessage, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("handler panicked", logfields.WithCommand(envelope.Command),
				logfields.WithPanicValue(rec))
			logger.Debug(string(debug.Stack()))

			err = spi.NewError(spi.HandlerError, "handler for command [%s] panicked: %v", envelope.Command, rec)
		}
	}()

	return handler(ctx, envelope.Payload)
}

func validatePayload(schema *gojsonschema.Schema, envelope *spi.Envelope) error {
	payload := envelope.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return spi.NewError(spi.InvalidPayload, "payload for command [%s] is not valid JSON: %v",
			envelope.Command, err)
	}

	if !result.Valid() {
		return spi.NewError(spi.InvalidPayload, "payload for command [%s] failed validation: %s",
			envelope.Command, result.Errors())
	}

	return nil
}
