package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewTrackingNumber builds an HLX tracking number from the creation
// instant and a random suffix: the last six digits of the epoch
// millisecond timestamp followed by four random digits. Uniqueness is
// enforced by the store, not here; collisions are possible and callers
// retry on conflict.
func NewTrackingNumber(now time.Time) (string, error) {
	millis := now.UnixMilli() % 1_000_000

	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generate tracking number suffix: %w", err)
	}
	suffix := n.Int64() + 1000

	return fmt.Sprintf("HLX%06d%04d", millis, suffix), nil
}

// NewOneTimeCodeValue draws a random six-digit code in [100000, 999999].
func NewOneTimeCodeValue() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900_000))
	if err != nil {
		return "", fmt.Errorf("generate one-time code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100_000), nil
}
