package auth

import (
	"context"
	"time"

	"quizroom/internal/cache"
)

const revokedKeyPrefix = "revoked:jti:"

// TokenStoreInterface is the revocation list checked on every protected call.
type TokenStoreInterface interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenStore keeps revoked token ids in Redis. Entries expire together with
// the token they revoke, so the set stays bounded. Revocations survive a
// process restart as long as Redis does.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Revoke marks a token id as revoked until its natural expiry.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to revoke
		return nil
	}
	return s.cache.Set(ctx, revokedKeyPrefix+jti, []byte("1"), ttl)
}

// IsRevoked checks whether a token id has been revoked.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.cache.Exists(ctx, revokedKeyPrefix+jti)
}
