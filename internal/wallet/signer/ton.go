package signer

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// SignTONTransaction signs a TON transfer intent: the base64 Ed25519
// signature over "ton:<to>:<value>:<seqno>". The caller wraps the signature
// into the wallet-contract message; no BOC serialization happens here.
func (s *service) SignTONTransaction(ctx context.Context, req *SignTONRequest) (*SignTONResponse, error) {
	log := util.LogFromContext(ctx)

	if err := validateTONAddress(req.To); err != nil {
		return nil, err
	}

	value, err := parseAmount(req.Value, maxValueBits)
	if err != nil {
		return nil, errors.Wrap(err, "value")
	}

	message := fmt.Sprintf("ton:%s:%s:%d", req.To, value.String(), req.Seqno)

	seed, err := keys.ParsePrivateKey(req.PrivateKey)
	if err != nil {
		return nil, err
	}

	// Clear private key material after use
	defer util.ZeroBytes(seed)

	privateKey := keys.Ed25519FromSeed(seed)
	defer util.ZeroBytes(privateKey)

	signature := ed25519.Sign(privateKey, []byte(message))

	log.Debug().Str("to", req.To).Msg("Signed TON transfer intent")

	return &SignTONResponse{
		Signature: base64.StdEncoding.EncodeToString(signature),
	}, nil
}

// validateTONAddress accepts the raw basechain form "0:<64 hex chars>", the
// format produced by address derivation.
func validateTONAddress(to string) error {
	workchain, accountHex, found := strings.Cut(to, ":")
	if !found || workchain != "0" {
		return errors.Wrapf(ErrInvalidAddress, "to address %q", to)
	}

	account, err := hex.DecodeString(accountHex)
	if err != nil || len(account) != sha256.Size {
		return errors.Wrapf(ErrInvalidAddress, "to address %q", to)
	}

	return nil
}
