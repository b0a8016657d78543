package address

import (
	"context"
	"encoding/hex"

	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/chain"
)

type service struct{}

// NewService creates a new AddressService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService() (Service, error) {
	return &service{}, nil
}

// Address derives the canonical address for a private key on the given chain
func (s *service) Address(ctx context.Context, c chain.Chain, privateKeyHex string) (string, error) {
	log := util.LogFromContext(ctx)

	var (
		addr string
		err  error
	)

	switch c {
	case chain.Ethereum:
		addr, err = s.ethereumAddress(privateKeyHex)
	case chain.Bitcoin:
		addr, err = s.bitcoinAddress(privateKeyHex)
	case chain.Solana:
		addr, err = s.solanaAddress(privateKeyHex)
	case chain.TON:
		addr, err = s.tonAddress(privateKeyHex)
	default:
		err = errors.Wrapf(chain.ErrUnsupportedChain, "chain %d", int(c))
	}

	if err != nil {
		log.Error().Err(err).Str("chain", c.String()).Msg("Failed to derive address")
		return "", err
	}

	return addr, nil
}

// PublicKey returns the hex-encoded Ed25519 public key for Solana and TON
func (s *service) PublicKey(ctx context.Context, c chain.Chain, privateKeyHex string) (string, error) {
	log := util.LogFromContext(ctx)

	switch c {
	case chain.Solana, chain.TON:
	case chain.Ethereum, chain.Bitcoin:
		return "", errors.Wrapf(chain.ErrUnsupportedChain, "no bare public key form for %s", c)
	default:
		return "", errors.Wrapf(chain.ErrUnsupportedChain, "chain %d", int(c))
	}

	publicKey, err := ed25519PublicKey(privateKeyHex)
	if err != nil {
		log.Error().Err(err).Str("chain", c.String()).Msg("Failed to compute public key")
		return "", err
	}

	return hex.EncodeToString(publicKey), nil
}
