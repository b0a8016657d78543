package seed

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
)

// slip10Key is the HMAC key fixed by SLIP-0010 for the Ed25519 curve.
const slip10Key = "ed25519 seed"

// deriveSLIP10 walks a SLIP-0010 Ed25519 path and returns the terminal
// 32-byte key. Every component must be hardened; Ed25519 has no public
// derivation, and softening a step would break the parent/child isolation
// the scheme guarantees. All intermediate key material is zeroed before
// returning.
func deriveSLIP10(seed []byte, indices []uint32) ([]byte, error) {
	for _, index := range indices {
		if index < hardenedOffset {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "ed25519 derivation requires hardened components, got %d", index)
		}
	}

	// Master: I = HMAC-SHA512(key="ed25519 seed", data=seed)
	mac := hmac.New(sha512.New, []byte(slip10Key))
	mac.Write(seed)
	sum := mac.Sum(nil)

	key := make([]byte, 32)
	chainCode := make([]byte, 32)
	copy(key, sum[:32])
	copy(chainCode, sum[32:])
	util.ZeroBytes(sum)

	defer util.ZeroBytes(chainCode)

	// Child: I = HMAC-SHA512(key=chaincode, data=0x00 || key || be32(index))
	data := make([]byte, 1+32+4)
	defer util.ZeroBytes(data)

	for _, index := range indices {
		data[0] = 0x00
		copy(data[1:33], key)
		binary.BigEndian.PutUint32(data[33:], index)

		mac := hmac.New(sha512.New, chainCode)
		mac.Write(data)
		sum := mac.Sum(nil)

		copy(key, sum[:32])
		copy(chainCode, sum[32:])
		util.ZeroBytes(sum)
	}

	return key, nil
}
