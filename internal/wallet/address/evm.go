package address

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// ethereumAddress derives the EVM address for a secp256k1 private key. All
// EVM chains share the same format: lowercase 0x-prefixed hex without an
// EIP-55 checksum.
func (s *service) ethereumAddress(privateKeyHex string) (string, error) {
	privateKey, err := keys.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return "", err
	}

	// Clear private key after use
	defer util.ZeroBytes(privateKey)

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert to ECDSA private key")
	}
	defer keys.ZeroECDSA(ecdsaPrivateKey)

	publicKey, ok := ecdsaPrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return "", errors.New("failed to cast public key to ECDSA")
	}

	addr := crypto.PubkeyToAddress(*publicKey)

	return strings.ToLower(addr.Hex()), nil
}
