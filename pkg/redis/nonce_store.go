package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNonceNotFound is returned when no nonce is stored for a wallet
var ErrNonceNotFound = errors.New("nonce not found or expired")

var (
	setNonceValue = Set
	getNonceValue = Get
	delNonceValue = Del
)

// NonceStore keeps single-use login nonces in Redis with a TTL.
// A nonce disappears on expiry or on first consumption.
type NonceStore struct {
	ttl time.Duration
}

// NewNonceStore creates a new nonce store
func NewNonceStore(ttl time.Duration) *NonceStore {
	return &NonceStore{ttl: ttl}
}

// Put stores a nonce for a wallet address, replacing any previous one
func (s *NonceStore) Put(ctx context.Context, walletAddress, nonce string) error {
	return setNonceValue(ctx, nonceKey(walletAddress), nonce, s.ttl)
}

// Get returns the pending nonce for a wallet address
func (s *NonceStore) Get(ctx context.Context, walletAddress string) (string, error) {
	val, err := getNonceValue(ctx, nonceKey(walletAddress))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrNonceNotFound
		}
		return "", err
	}
	return val, nil
}

// Consume removes the nonce so it cannot be replayed
func (s *NonceStore) Consume(ctx context.Context, walletAddress string) error {
	return delNonceValue(ctx, nonceKey(walletAddress))
}

func nonceKey(walletAddress string) string {
	return "siwe:nonce:" + strings.ToLower(walletAddress)
}
