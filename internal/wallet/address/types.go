package address

import (
	"context"

	"github/multichain/go-walletcore/internal/wallet/chain"
)

// Service provides address derivation from private keys
type Service interface {
	// Address derives the canonical address for a private key on the given chain
	Address(ctx context.Context, c chain.Chain, privateKeyHex string) (string, error)

	// PublicKey returns the hex-encoded Ed25519 public key for the Ed25519
	// chains (Solana, TON). The secp256k1 chains have no bare public key form
	// here and return chain.ErrUnsupportedChain.
	PublicKey(ctx context.Context, c chain.Chain, privateKeyHex string) (string, error)
}
