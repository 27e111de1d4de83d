/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endorsementtxstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/credentia/platform/pkg/service/endorsement"
	"github.com/credentia/platform/pkg/storage/mongodb"
)

const (
	collectionName = "endorsementtxstore"
)

type mongoDocument struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`

	Author             string
	PayloadType        string
	Payload            []byte
	State              int16
	StateHistory       []int16
	EndorsementRequest []byte
	EndorserSignature  []byte
	LedgerResult       []byte
	FailureReason      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Store stores endorsement transactions in mongo. Every orchestrator step
// reads the transaction back from here and writes it through on commit;
// nothing is cached in memory across steps.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates the endorsement transaction store.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: map[string]interface{}{
					"author": -1,
				},
				Options: options.Index(),
			},
		}); err != nil {
		return err
	}

	return nil
}

func (s *Store) Create(ctx context.Context, data *endorsement.TransactionData) (*endorsement.Transaction, error) {
	obj := mapTransactionDataToMongoDocument(data)

	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.InsertOne(ctx, obj)
	if err != nil {
		return nil, err
	}

	insertedID := result.InsertedID.(primitive.ObjectID) //nolint: errcheck

	return &endorsement.Transaction{
		ID:              endorsement.TxID(insertedID.Hex()),
		TransactionData: *data,
	}, nil
}

func (s *Store) Get(ctx context.Context, txID endorsement.TxID) (*endorsement.Transaction, error) {
	id, err := primitive.ObjectIDFromHex(string(txID))
	if err != nil {
		return nil, err
	}

	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, endorsement.ErrDataNotFound
		}

		return nil, err
	}

	return mapDocumentToTransaction(&doc), nil
}

func (s *Store) Update(ctx context.Context, tx *endorsement.Transaction) error {
	id, err := primitive.ObjectIDFromHex(string(tx.ID))
	if err != nil {
		return err
	}

	collection := s.mongoClient.Database().Collection(collectionName)

	doc := mapTransactionDataToMongoDocument(&tx.TransactionData)
	doc.ID = id

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return endorsement.ErrDataNotFound
	}

	return nil
}

func mapTransactionDataToMongoDocument(data *endorsement.TransactionData) *mongoDocument {
	history := make([]int16, len(data.StateHistory))
	for i, state := range data.StateHistory {
		history[i] = int16(state)
	}

	return &mongoDocument{
		Author:             data.Author,
		PayloadType:        string(data.PayloadType),
		Payload:            data.Payload,
		State:              int16(data.State),
		StateHistory:       history,
		EndorsementRequest: data.EndorsementRequest,
		EndorserSignature:  data.EndorserSignature,
		LedgerResult:       data.LedgerResult,
		FailureReason:      data.FailureReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func mapDocumentToTransaction(doc *mongoDocument) *endorsement.Transaction {
	history := make([]endorsement.TransactionState, len(doc.StateHistory))
	for i, state := range doc.StateHistory {
		history[i] = endorsement.TransactionState(state)
	}

	return &endorsement.Transaction{
		ID: endorsement.TxID(doc.ID.Hex()),
		TransactionData: endorsement.TransactionData{
			Author:             doc.Author,
			PayloadType:        endorsement.PayloadType(doc.PayloadType),
			Payload:            doc.Payload,
			State:              endorsement.TransactionState(doc.State),
			StateHistory:       history,
			EndorsementRequest: doc.EndorsementRequest,
			EndorserSignature:  doc.EndorserSignature,
			LedgerResult:       doc.LedgerResult,
			FailureReason:      doc.FailureReason,
			CreatedAt:          doc.CreatedAt,
			UpdatedAt:          doc.UpdatedAt,
		},
	}
}
