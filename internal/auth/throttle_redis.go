// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/constants"
)

// Throttle limits repeated login attempts per account.
type Throttle interface {
	// Hit records one failed-or-pending attempt for the email and returns
	// apperr.RateLimited once the window budget is exhausted.
	Hit(ctx context.Context, email string) error

	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// RedisThrottle implements [Throttle] with a per-email counter in Redis.
//
// The counter lives under a TTL key, so a quiet window wipes the slate
// without any sweeper process.
type RedisThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewRedisThrottle creates a Redis-backed login throttle with the
// default attempt budget.
func NewRedisThrottle(client *redis.Client) *RedisThrottle {
	return &RedisThrottle{
		client:      client,
		maxAttempts: constants.LoginMaxAttempts,
		window:      constants.LoginAttemptWindow,
	}
}

/*
Hit increments the attempt counter for the email.

Description: The first hit in a window arms the TTL; later hits ride the
existing expiry so a persistent attacker cannot keep the window alive
forever by retrying.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: apperr.RateLimited when the budget is spent, or connectivity errors
*/
func (throttle *RedisThrottle) Hit(context context.Context, email string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixLoginAttempts + email

	// Count this attempt
	count, err := throttle.client.Incr(context, key).Result()
	if err != nil {
		return fmt.Errorf("redis_login_throttle_incr_failed: %w", err)
	}

	// Arm the expiry on the first attempt of the window
	if count == 1 {
		if err := throttle.client.Expire(context, key, throttle.window).Err(); err != nil {
			return fmt.Errorf("redis_login_throttle_expire_failed: %w", err)
		}
	}

	// Reject once the budget is spent
	if count > throttle.maxAttempts {
		return apperr.RateLimited("Too many login attempts, please try again later")
	}

	return nil
}

/*
Reset clears the attempt counter for the email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Deletion failures
*/
func (throttle *RedisThrottle) Reset(context context.Context, email string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixLoginAttempts + email

	// Drop the counter
	if err := throttle.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_reset_failed: %w", err)
	}

	return nil
}
