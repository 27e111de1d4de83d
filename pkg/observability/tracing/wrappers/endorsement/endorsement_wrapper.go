/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package endorsement . Service

package endorsement

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/credentia/platform/pkg/client/agent"
	"github.com/credentia/platform/pkg/observability/tracing/attributeutil"
	"github.com/credentia/platform/pkg/service/endorsement"
)

// Service is the endorsement service surface traced by Wrapper.
type Service interface {
	CreateDraft(ctx context.Context, author string, payloadType endorsement.PayloadType,
		payload json.RawMessage) (*endorsement.Transaction, error)
	RequestEndorsement(ctx context.Context, txID endorsement.TxID, target agent.Target) (*endorsement.Transaction, error)
	Sign(ctx context.Context, txID endorsement.TxID, target agent.Target, signerDID string) (*endorsement.Transaction, error)
	Submit(ctx context.Context, txID endorsement.TxID, target agent.Target) (*endorsement.Transaction, error)
	GetTransaction(ctx context.Context, txID endorsement.TxID) (*endorsement.Transaction, error)
}

// Wrapper adds a span around every state-changing endorsement operation.
type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

// Wrap returns a traced view of the given endorsement service.
func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateDraft(ctx context.Context, author string, payloadType endorsement.PayloadType,
	payload json.RawMessage) (*endorsement.Transaction, error) {
	ctx, span := w.tracer.Start(ctx, "endorsement.CreateDraft")
	defer span.End()

	span.SetAttributes(attribute.String("author", author))
	span.SetAttributes(attribute.String("payload_type", string(payloadType)))

	tx, err := w.svc.CreateDraft(ctx, author, payloadType, payload)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("tx_id", string(tx.ID)))

	return tx, nil
}

func (w *Wrapper) RequestEndorsement(ctx context.Context, txID endorsement.TxID,
	target agent.Target) (*endorsement.Transaction, error) {
	ctx, span := w.tracer.Start(ctx, "endorsement.RequestEndorsement")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(txID)))
	span.SetAttributes(attributeutil.JSON("target", target, attributeutil.WithRedacted("apiKey")))

	return w.svc.RequestEndorsement(ctx, txID, target)
}

func (w *Wrapper) Sign(ctx context.Context, txID endorsement.TxID, target agent.Target,
	signerDID string) (*endorsement.Transaction, error) {
	ctx, span := w.tracer.Start(ctx, "endorsement.Sign")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(txID)))
	span.SetAttributes(attribute.String("signer_did", signerDID))
	span.SetAttributes(attributeutil.JSON("target", target, attributeutil.WithRedacted("apiKey")))

	return w.svc.Sign(ctx, txID, target, signerDID)
}

func (w *Wrapper) Submit(ctx context.Context, txID endorsement.TxID,
	target agent.Target) (*endorsement.Transaction, error) {
	ctx, span := w.tracer.Start(ctx, "endorsement.Submit")
	defer span.End()

	span.SetAttributes(attribute.String("tx_id", string(txID)))
	span.SetAttributes(attributeutil.JSON("target", target, attributeutil.WithRedacted("apiKey")))

	return w.svc.Submit(ctx, txID, target)
}

func (w *Wrapper) GetTransaction(ctx context.Context, txID endorsement.TxID) (*endorsement.Transaction, error) {
	return w.svc.GetTransaction(ctx, txID)
}
