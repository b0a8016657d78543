package signer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// bitcoinEnvelope is the signed transfer envelope returned for Bitcoin. It
// carries a deterministic ECDSA signature over the transfer parameters plus
// the data a backend needs to assemble the spend; it is not a broadcast-ready
// transaction, since no UTXO inputs are modeled here.
type bitcoinEnvelope struct {
	Type           string `json:"type"`
	To             string `json:"to"`
	Value          uint64 `json:"value"`
	FeeRate        uint64 `json:"fee_rate"`
	PrivateKeyHash string `json:"private_key_hash"`
	Signature      string `json:"signature"`
}

// SignBitcoinTransaction signs a Bitcoin transfer intent into a JSON
// envelope. See bitcoinEnvelope for the scope of the output.
func (s *service) SignBitcoinTransaction(ctx context.Context, req *SignBitcoinRequest) (*SignBitcoinResponse, error) {
	log := util.LogFromContext(ctx)

	if _, err := btcutil.DecodeAddress(req.To, &chaincfg.MainNetParams); err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "to address %q", req.To)
	}

	privateKeyBytes, err := keys.ParsePrivateKey(req.PrivateKey)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer util.ZeroBytes(privateKeyBytes)

	privateKey, _ := btcec.PrivKeyFromBytes(privateKeyBytes)
	defer privateKey.Zero()

	publicKey := privateKey.PubKey().SerializeCompressed()
	publicKeyHex := hex.EncodeToString(publicKey)

	// The digest binds the transfer parameters to the signing key.
	digest := sha256.Sum256([]byte(fmt.Sprintf("btc:%s:%d:%d:%s", req.To, req.Value, req.FeeRate, publicKeyHex)))

	signature := ecdsa.Sign(privateKey, digest[:])

	// The envelope identifies the key by the hash of its public key, never
	// by anything derived from the private scalar.
	keyHash := sha256.Sum256(publicKey)

	envelope := &bitcoinEnvelope{
		Type:           "p2wpkh",
		To:             req.To,
		Value:          req.Value,
		FeeRate:        req.FeeRate,
		PrivateKeyHash: hex.EncodeToString(keyHash[:]),
		Signature:      hex.EncodeToString(signature.Serialize()),
	}

	out, err := json.Marshal(envelope)
	if err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "failed to marshal envelope: %v", err)
	}

	log.Debug().Str("to", req.To).Msg("Signed Bitcoin transfer envelope")

	return &SignBitcoinResponse{Envelope: string(out)}, nil
}
