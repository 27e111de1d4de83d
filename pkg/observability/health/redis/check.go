/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// New returns a health check that pings the redis deployment carrying the
// command bus.
func New(addrs []string, opts ...ClientOpt) func(ctx context.Context) error {
	opt := &clientOpts{}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		MasterName:            opt.masterName,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}

		return nil
	}
}

type clientOpts struct {
	masterName string
	password   string
	tlsConfig  *tls.Config
}

// ClientOpt configures the check's redis client.
type ClientOpt func(opts *clientOpts)

// WithMasterName sets the sentinel master name.
func WithMasterName(masterName string) ClientOpt {
	return func(opts *clientOpts) {
		opts.masterName = masterName
	}
}

// WithPassword sets the redis password.
func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

// WithTLSConfig sets the TLS config for the redis connection.
func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}
