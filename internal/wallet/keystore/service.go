package keystore

import (
	"context"

	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/config"
	"github/multichain/go-walletcore/internal/util"
)

// Service provides keystore v3 encryption and decryption functionality
type Service interface {
	// DecryptKeystore decrypts a keystore v3 document and returns the
	// contained private key as 0x-prefixed hex
	DecryptKeystore(ctx context.Context, keystoreJSON string, password string) (string, error)

	// EncryptKey encrypts a 32-byte private key into a keystore v3 document
	EncryptKey(ctx context.Context, privateKeyHex string, password string) (*KeystoreJSON, error)
}

type service struct {
	scryptParams ScryptParams
}

// NewService creates a new KeystoreService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(cfg config.Keystore) (Service, error) {
	params := DefaultScryptParams()

	if cfg.ScryptN > 1 {
		params.N = cfg.ScryptN
	}

	if cfg.ScryptR > 0 {
		params.R = cfg.ScryptR
	}

	if cfg.ScryptP > 0 {
		params.P = cfg.ScryptP
	}

	return &service{scryptParams: *params}, nil
}

// DecryptKeystore decrypts a keystore v3 document and returns the contained
// private key as 0x-prefixed hex
func (s *service) DecryptKeystore(ctx context.Context, keystoreJSON string, password string) (string, error) {
	log := util.LogFromContext(ctx)

	privateKeyHex, err := s.decryptKeystore(keystoreJSON, password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decrypt keystore")
		return "", errors.Wrap(err, "failed to decrypt keystore")
	}

	return privateKeyHex, nil
}

// EncryptKey encrypts a private key into a password-protected keystore v3
// document. The address field is the EVM address of the key.
func (s *service) EncryptKey(ctx context.Context, privateKeyHex string, password string) (*KeystoreJSON, error) {
	log := util.LogFromContext(ctx)

	keystoreJSON, err := s.encryptKey(privateKeyHex, password)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encrypt private key")
		return nil, errors.Wrap(err, "failed to encrypt private key")
	}

	log.Debug().Str("address", keystoreJSON.Address).Str("id", keystoreJSON.ID).Msg("Encrypted private key to keystore")

	return keystoreJSON, nil
}
