package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
	"golang.org/x/crypto/scrypt"
)

// encryptKey encrypts a 32-byte private key into a keystore v3 document
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func (s *service) encryptKey(privateKeyHex string, password string) (*KeystoreJSON, error) {
	privateKey, err := keys.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer util.ZeroBytes(privateKey)

	// Generate random salt and IV
	//nolint:mnd // 32 is the standard salt size for scrypt
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	iv := make([]byte, aes.BlockSize) // AES-128-CTR requires 16-byte IV
	if _, err := rand.Read(iv); err != nil {
		return nil, errors.Wrap(err, "failed to generate IV")
	}

	// Derive encryption key using scrypt
	params := s.scryptParams
	params.Salt = hex.EncodeToString(salt)

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}

	// Clear derived key after use
	defer util.ZeroBytes(derivedKey)

	// Encrypt private key using AES-128-CTR
	ciphertext, err := encryptAES128CTR(derivedKey[:16], iv, privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt private key")
	}

	// Calculate MAC (Keccak-256 of derivedKey[16:32] + ciphertext)
	mac := crypto.Keccak256(derivedKey[16:32], ciphertext)

	kdfParams, err := json.Marshal(&params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal kdf params")
	}

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert to ECDSA private key")
	}
	defer keys.ZeroECDSA(ecdsaPrivateKey)

	address := crypto.PubkeyToAddress(ecdsaPrivateKey.PublicKey)

	return &KeystoreJSON{
		Version: keystoreVersion,
		ID:      uuid.New().String(),
		Address: hex.EncodeToString(address.Bytes()),
		Crypto: &CryptoJSON{
			Cipher:     cipherAES128CTR,
			Ciphertext: hex.EncodeToString(ciphertext),
			CipherParams: &CipherParamsJSON{
				IV: hex.EncodeToString(iv),
			},
			KDF:       kdfScrypt,
			KDFParams: kdfParams,
			MAC:       hex.EncodeToString(mac),
		},
	}, nil
}

// encryptAES128CTR encrypts data using AES-128-CTR mode
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func encryptAES128CTR(key []byte, iv []byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(ciphertext, plaintext)

	return ciphertext, nil
}
