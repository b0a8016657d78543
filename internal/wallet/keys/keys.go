package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// PrivateKeyLength is the length of a raw private key scalar in bytes, for
// both secp256k1 and Ed25519 seeds.
const PrivateKeyLength = 32

// ErrInvalidKeyEncoding is returned when private key material is not valid
// hex or has the wrong length.
var ErrInvalidKeyEncoding = errors.New("invalid private key encoding")

// ParsePrivateKey decodes a 32-byte private key from a hex string. A "0x"
// prefix is accepted. The caller owns the returned buffer and must zero it
// after use.
func ParsePrivateKey(privateKeyHex string) ([]byte, error) {
	trimmed := strings.TrimPrefix(privateKeyHex, "0x")

	key, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKeyEncoding, "private key is not valid hex")
	}

	if len(key) != PrivateKeyLength {
		// Do not leak partially decoded key material.
		for i := range key {
			key[i] = 0
		}

		return nil, errors.Wrapf(ErrInvalidKeyEncoding, "private key must be %d bytes, got %d", PrivateKeyLength, len(key))
	}

	return key, nil
}

// EncodePrivateKey encodes a raw private key as lowercase hex without prefix.
func EncodePrivateKey(key []byte) string {
	return hex.EncodeToString(key)
}

// Ed25519FromSeed expands a 32-byte SLIP-0010 key into an Ed25519 private
// key. The returned key contains sensitive material; zero it after use.
func Ed25519FromSeed(seed []byte) ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(seed)
}

// ZeroECDSA wipes the scalar of an ECDSA private key in place.
func ZeroECDSA(privateKey *ecdsa.PrivateKey) {
	if privateKey == nil || privateKey.D == nil {
		return
	}

	bits := privateKey.D.Bits()
	for i := range bits {
		bits[i] = 0
	}
}
