package signer

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// SignSolanaTransaction signs a Solana transfer intent: the base64 Ed25519
// signature over "sol:<to>:<value>:<recent_blockhash>". Assembling the wire
// Message around the signature is the broadcaster's job.
func (s *service) SignSolanaTransaction(ctx context.Context, req *SignSolanaRequest) (*SignSolanaResponse, error) {
	log := util.LogFromContext(ctx)

	toBytes, err := base58.Decode(req.To)
	if err != nil || len(toBytes) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidAddress, "to address %q", req.To)
	}

	value, err := parseAmount(req.Value, maxValueBits)
	if err != nil {
		return nil, errors.Wrap(err, "value")
	}

	message := fmt.Sprintf("sol:%s:%s:%s", req.To, value.String(), req.RecentBlockhash)

	seed, err := keys.ParsePrivateKey(req.PrivateKey)
	if err != nil {
		return nil, err
	}

	// Clear private key material after use
	defer util.ZeroBytes(seed)

	privateKey := keys.Ed25519FromSeed(seed)
	defer util.ZeroBytes(privateKey)

	signature := ed25519.Sign(privateKey, []byte(message))

	log.Debug().Str("to", req.To).Msg("Signed Solana transfer intent")

	return &SignSolanaResponse{
		Signature: base64.StdEncoding.EncodeToString(signature),
	}, nil
}
