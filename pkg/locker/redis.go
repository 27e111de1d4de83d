/*
Copyright Credentia Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package locker

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLocker provides distributed per-key mutexes backed by redsync, for
// deployments where more than one service instance may drive the same
// endorsement transaction.
type RedisLocker struct {
	rs *redsync.Redsync
}

// NewRedisLocker creates a redsync locker over the given redis client.
func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{
		rs: redsync.New(goredis.NewPool(client)),
	}
}

// NewMutex creates a new distributed mutex.
func (l *RedisLocker) NewMutex(key string, opts ...redsync.Option) Lock {
	return l.rs.NewMutex(key, opts...)
}
