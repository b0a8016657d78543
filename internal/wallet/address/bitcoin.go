package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// bitcoinAddress derives the mainnet P2WPKH (native segwit) address for a
// secp256k1 private key: bech32 over the hash160 of the compressed public key.
func (s *service) bitcoinAddress(privateKeyHex string) (string, error) {
	privateKeyBytes, err := keys.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return "", err
	}

	// Clear private key after use
	defer util.ZeroBytes(privateKeyBytes)

	privateKey, _ := btcec.PrivKeyFromBytes(privateKeyBytes)
	defer privateKey.Zero()

	pubKeyHash := btcutil.Hash160(privateKey.PubKey().SerializeCompressed())

	addr, err := btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, &chaincfg.MainNetParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to build witness pubkey hash address")
	}

	return addr.EncodeAddress(), nil
}
