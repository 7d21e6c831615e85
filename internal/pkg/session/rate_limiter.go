// internal/pkg/session/rate_limiter.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginAttempts = 5
	loginWindow      = 15 * time.Minute
)

type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// CheckLoginAttempt records a login attempt for the ip/email pair and reports
// whether it is still within the allowed budget.
func (r *RateLimiter) CheckLoginAttempt(ctx context.Context, ip, email string) (bool, error) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment login attempt: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		r.client.Expire(ctx, key, loginWindow)
	}

	return count <= maxLoginAttempts, nil
}

// ResetLoginAttempts clears the attempt counter after a successful login.
func (r *RateLimiter) ResetLoginAttempts(ctx context.Context, ip, email string) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
	r.client.Del(ctx, key)
}
