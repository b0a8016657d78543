package address

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// solanaAddress derives the Solana address for an Ed25519 private key: the
// base58 encoding of the raw 32-byte public key, no hashing involved.
func (s *service) solanaAddress(privateKeyHex string) (string, error) {
	publicKey, err := ed25519PublicKey(privateKeyHex)
	if err != nil {
		return "", err
	}

	return base58.Encode(publicKey), nil
}

// ed25519PublicKey expands a hex-encoded 32-byte seed into its Ed25519
// public key. The expanded private key is cleared before returning.
func ed25519PublicKey(privateKeyHex string) (ed25519.PublicKey, error) {
	seed, err := keys.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	// Clear private key material after use
	defer util.ZeroBytes(seed)

	privateKey := keys.Ed25519FromSeed(seed)
	defer util.ZeroBytes(privateKey)

	publicKey, ok := privateKey.Public().(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("failed to cast public key to Ed25519")
	}

	return publicKey, nil
}
