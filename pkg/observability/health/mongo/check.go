/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const pingTimeout = 3 * time.Second

// New returns a health check that pings the mongo deployment holding the
// endorsement transaction store.
func New(connString string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(connString))
		if err != nil {
			return fmt.Errorf("connect to mongodb: %w", err)
		}

		defer func() {
			_ = client.Disconnect(ctx) //nolint:errcheck
		}()

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			return fmt.Errorf("ping mongodb: %w", err)
		}

		return nil
	}
}
