package seed

import (
	"context"

	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/wallet/chain"
)

// Deriver provides chain private key derivation from a master seed
type Deriver interface {
	// DerivePrivateKey derives the private key for the chain's fixed path
	// with index as the final component, returned as 64 hex chars.
	// Derivation is a pure function of (seed, chain, index).
	DerivePrivateKey(ctx context.Context, c chain.Chain, index uint32) (string, error)

	// Clone returns an independent copy owning its own seed
	Clone() Deriver

	// Clear zeroes the seed in memory; the deriver is unusable afterwards
	Clear()
}

var (
	// ErrInvalidSeedLength is returned for seeds outside the BIP32 range of
	// 16 to 64 bytes.
	ErrInvalidSeedLength = errors.New("seed must be between 16 and 64 bytes")

	// ErrInvalidDerivationPath is returned for malformed derivation paths or
	// a non-hardened component on an Ed25519 path.
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
)
