package keystore

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// KeystoreJSON is a Web3 Secret Storage (keystore v3) document
//
//nolint:revive // KeystoreJSON is the standard name for the keystore v3 JSON structure
type KeystoreJSON struct {
	Version int         `json:"version"`
	ID      string      `json:"id,omitempty"`
	Address string      `json:"address,omitempty"`
	Crypto  *CryptoJSON `json:"crypto"`
}

// CryptoJSON is the crypto section of a keystore v3 document. KDFParams is
// kept raw because its shape depends on the kdf.
type CryptoJSON struct {
	Cipher       string            `json:"cipher"`
	Ciphertext   string            `json:"ciphertext"`
	CipherParams *CipherParamsJSON `json:"cipherparams"`
	KDF          string            `json:"kdf"`
	KDFParams    json.RawMessage   `json:"kdfparams"`
	MAC          string            `json:"mac"`
}

// CipherParamsJSON holds the AES-CTR initialization vector
type CipherParamsJSON struct {
	IV string `json:"iv"`
}

// ScryptParams defines scrypt KDF parameters
type ScryptParams struct {
	DKLen int    `json:"dklen"`
	N     int    `json:"n"`
	P     int    `json:"p"`
	R     int    `json:"r"`
	Salt  string `json:"salt,omitempty"`
}

// PBKDF2Params defines pbkdf2 KDF parameters
type PBKDF2Params struct {
	C     int    `json:"c"`
	DKLen int    `json:"dklen"`
	PRF   string `json:"prf"`
	Salt  string `json:"salt"`
}

// DefaultScryptParams returns default scrypt parameters for keystore v3
func DefaultScryptParams() *ScryptParams {
	const (
		scryptDKLen = 32     // Derived key length (32 bytes)
		scryptN     = 262144 // CPU/memory cost parameter (2^18)
		scryptR     = 8      // Block size parameter
		scryptP     = 1      // Parallelization parameter
	)

	return &ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}

var (
	// ErrUnsupportedKDF is returned when the kdf (or its prf) is outside the
	// supported set: scrypt and pbkdf2 with hmac-sha256.
	ErrUnsupportedKDF = errors.New("unsupported kdf")

	// ErrUnsupportedCipher is returned for any cipher other than aes-128-ctr.
	ErrUnsupportedCipher = errors.New("unsupported cipher")

	// ErrMACMismatch is returned when the keystore MAC does not match the
	// derived key, which almost always means a wrong password.
	ErrMACMismatch = errors.New("keystore mac mismatch")
)

// ParseError reports a structurally invalid keystore document, addressed by
// the JSON field that failed.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed keystore field %q: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("malformed keystore field %q", e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
