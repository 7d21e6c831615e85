// internal/pkg/session/otp_store.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

const otpTTL = 10 * time.Minute

// OTPStore keeps short-lived password-reset codes keyed by role and email.
type OTPStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(role, email string) string {
	return fmt.Sprintf("otp:reset:%s:%s", role, email)
}

// Put stores the code, replacing any previous one for the same principal.
func (s *OTPStore) Put(ctx context.Context, role, email, code string) error {
	if err := s.client.Set(ctx, otpKey(role, email), code, otpTTL).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

// Verify checks the code and consumes it on success.
func (s *OTPStore) Verify(ctx context.Context, role, email, code string) error {
	key := otpKey(role, email)

	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return xerrors.ErrUnauthorized
	}
	if err != nil {
		return fmt.Errorf("failed to read otp: %w", err)
	}
	if stored != code {
		return xerrors.ErrUnauthorized
	}

	s.client.Del(ctx, key)
	return nil
}
