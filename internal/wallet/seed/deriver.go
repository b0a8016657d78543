package seed

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/chain"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

const (
	minSeedLength = 16 // 128 bits, BIP32 minimum
	maxSeedLength = 64 // 512 bits, BIP32 maximum

	hardenedOffset = uint32(0x80000000)
)

// deriver implements Deriver with thread-safe access to its seed copy
type deriver struct {
	seed []byte
	mu   sync.RWMutex
}

// NewDeriver creates a Deriver owning an independent copy of the seed. The
// caller keeps ownership of the passed slice and should zero it separately.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewDeriver(seed []byte) (Deriver, error) {
	if len(seed) < minSeedLength || len(seed) > maxSeedLength {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "got %d bytes", len(seed))
	}

	seedCopy := make([]byte, len(seed))
	copy(seedCopy, seed)

	return &deriver{
		seed: seedCopy,
	}, nil
}

// DerivePrivateKey derives the chain's private key at index
func (d *deriver) DerivePrivateKey(_ context.Context, c chain.Chain, index uint32) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.seed == nil {
		return "", errors.New("deriver is cleared")
	}

	path, err := c.DerivationPath(index)
	if err != nil {
		return "", err
	}

	indices, err := parseDerivationPath(path)
	if err != nil {
		return "", err
	}

	curve, err := c.Curve()
	if err != nil {
		return "", err
	}

	var key []byte
	switch curve {
	case chain.CurveSecp256k1:
		key, err = deriveBIP32(d.seed, indices)
	case chain.CurveEd25519:
		key, err = deriveSLIP10(d.seed, indices)
	default:
		return "", errors.Wrapf(chain.ErrUnsupportedChain, "curve %d", int(curve))
	}

	if err != nil {
		return "", errors.Wrapf(err, "failed to derive %s key", c)
	}

	defer util.ZeroBytes(key)

	return keys.EncodePrivateKey(key), nil
}

// Clone returns an independent copy of the deriver
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func (d *deriver) Clone() Deriver {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seedCopy := make([]byte, len(d.seed))
	copy(seedCopy, d.seed)

	return &deriver{
		seed: seedCopy,
	}
}

// Clear clears the seed from memory
func (d *deriver) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.seed != nil {
		util.ZeroBytes(d.seed)
		d.seed = nil
	}
}

// deriveBIP32 walks a BIP32 path over secp256k1 and returns the terminal
// 32-byte scalar. Intermediate extended keys are zeroed as the walk advances.
func deriveBIP32(seed []byte, indices []uint32) ([]byte, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	key := masterKey
	for _, index := range indices {
		child, err := key.NewChildKey(index)

		// The parent extended key is no longer needed once the child exists.
		util.ZeroBytes(key.Key)
		util.ZeroBytes(key.ChainCode)

		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}

		key = child
	}

	privateKey := make([]byte, len(key.Key))
	copy(privateKey, key.Key)
	util.ZeroBytes(key.Key)
	util.ZeroBytes(key.ChainCode)

	return privateKey, nil
}

// parseDerivationPath parses a BIP32/SLIP-0010 path string into indices with
// the hardened flag applied.
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func parseDerivationPath(path string) ([]uint32, error) {
	if path == "" || path[0] != 'm' {
		return nil, errors.Wrapf(ErrInvalidDerivationPath, "path %q must start with m", path)
	}

	rest := strings.TrimPrefix(path, "m")
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return nil, errors.Wrapf(ErrInvalidDerivationPath, "path %q has no components", path)
	}

	parts := strings.Split(rest, "/")
	indices := make([]uint32, 0, len(parts))

	for _, part := range parts {
		hardened := strings.HasSuffix(part, "'")
		if hardened {
			part = strings.TrimSuffix(part, "'")
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "invalid path component %q", part)
		}

		if uint32(index) >= hardenedOffset {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "component %d out of range", index)
		}

		if hardened {
			index += uint64(hardenedOffset)
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}
