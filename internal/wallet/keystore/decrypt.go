package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

const (
	// keystoreVersion is the only supported Web3 Secret Storage version.
	keystoreVersion = 3

	// macLength is the number of leading MAC bytes that must match.
	macLength = 16

	// minDKLen and maxDKLen bound the derived key length: the MAC key uses
	// bytes 16..32, and nothing in the format needs more than 64.
	minDKLen = 32
	maxDKLen = 64

	cipherAES128CTR = "aes-128-ctr"
	kdfScrypt       = "scrypt"
	kdfPBKDF2       = "pbkdf2"
	prfHMACSHA256   = "hmac-sha256"
)

// parsedKeystore holds the decoded binary fields of a keystore v3 document.
type parsedKeystore struct {
	kdf        string
	kdfParams  json.RawMessage
	cipher     string
	iv         []byte
	ciphertext []byte
	mac        []byte
}

// decryptKeystore runs the decryption pipeline: parse, derive key, verify
// MAC, decrypt. The MAC is always checked before the ciphertext is touched.
func (s *service) decryptKeystore(keystoreJSON string, password string) (string, error) {
	parsed, err := parseKeystore(keystoreJSON)
	if err != nil {
		return "", err
	}

	derivedKey, err := deriveKey(parsed, password)
	if err != nil {
		return "", err
	}

	// Clear derived key on every path
	defer util.ZeroBytes(derivedKey)

	if err := verifyMAC(derivedKey, parsed); err != nil {
		return "", err
	}

	plaintext, err := decrypt(parsed, derivedKey)
	if err != nil {
		return "", err
	}

	// Clear plaintext after encoding
	defer util.ZeroBytes(plaintext)

	return "0x" + hex.EncodeToString(plaintext), nil
}

// parseKeystore decodes and structurally validates a keystore v3 document.
func parseKeystore(keystoreJSON string) (*parsedKeystore, error) {
	var doc KeystoreJSON
	if err := json.Unmarshal([]byte(keystoreJSON), &doc); err != nil {
		return nil, &ParseError{Field: "json", Err: err}
	}

	if doc.Version != keystoreVersion {
		return nil, &ParseError{Field: "version"}
	}

	if doc.Crypto == nil {
		return nil, &ParseError{Field: "crypto"}
	}

	if doc.Crypto.Ciphertext == "" {
		return nil, &ParseError{Field: "ciphertext"}
	}

	ciphertext, err := hex.DecodeString(doc.Crypto.Ciphertext)
	if err != nil {
		return nil, &ParseError{Field: "ciphertext", Err: err}
	}

	if doc.Crypto.CipherParams == nil {
		return nil, &ParseError{Field: "cipherparams"}
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(doc.Crypto.CipherParams.IV)
	if err != nil {
		return nil, &ParseError{Field: "cipherparams.iv", Err: err}
	}

	// CTR requires a full AES block as IV; checking here keeps NewCTR from
	// panicking later.
	if len(iv) != aes.BlockSize {
		return nil, &ParseError{Field: "cipherparams.iv"}
	}

	if doc.Crypto.MAC == "" {
		return nil, &ParseError{Field: "mac"}
	}

	mac, err := hex.DecodeString(doc.Crypto.MAC)
	if err != nil {
		return nil, &ParseError{Field: "mac", Err: err}
	}

	if len(mac) < macLength {
		return nil, &ParseError{Field: "mac"}
	}

	if doc.Crypto.KDF == "" {
		return nil, &ParseError{Field: "kdf"}
	}

	if len(doc.Crypto.KDFParams) == 0 {
		return nil, &ParseError{Field: "kdfparams"}
	}

	if doc.Crypto.Cipher == "" {
		return nil, &ParseError{Field: "cipher"}
	}

	return &parsedKeystore{
		kdf:        doc.Crypto.KDF,
		kdfParams:  doc.Crypto.KDFParams,
		cipher:     doc.Crypto.Cipher,
		iv:         iv,
		ciphertext: ciphertext,
		mac:        mac,
	}, nil
}

// deriveKey runs the keystore's kdf over the password. Only scrypt and
// pbkdf2 with hmac-sha256 are supported.
func deriveKey(parsed *parsedKeystore, password string) ([]byte, error) {
	switch parsed.kdf {
	case kdfScrypt:
		return deriveScryptKey(parsed.kdfParams, password)
	case kdfPBKDF2:
		return derivePBKDF2Key(parsed.kdfParams, password)
	default:
		return nil, errors.Wrapf(ErrUnsupportedKDF, "kdf %q", parsed.kdf)
	}
}

func deriveScryptKey(rawParams json.RawMessage, password string) ([]byte, error) {
	var params ScryptParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, &ParseError{Field: "kdfparams", Err: err}
	}

	if params.DKLen < minDKLen || params.DKLen > maxDKLen {
		return nil, &ParseError{Field: "kdfparams.dklen"}
	}

	salt, err := hex.DecodeString(params.Salt)
	if err != nil {
		return nil, &ParseError{Field: "kdfparams.salt", Err: err}
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, &ParseError{Field: "kdfparams", Err: err}
	}

	return derivedKey, nil
}

func derivePBKDF2Key(rawParams json.RawMessage, password string) ([]byte, error) {
	var params PBKDF2Params
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, &ParseError{Field: "kdfparams", Err: err}
	}

	if params.PRF != prfHMACSHA256 {
		return nil, errors.Wrapf(ErrUnsupportedKDF, "pbkdf2 prf %q", params.PRF)
	}

	if params.C <= 0 {
		return nil, &ParseError{Field: "kdfparams.c"}
	}

	if params.DKLen < minDKLen || params.DKLen > maxDKLen {
		return nil, &ParseError{Field: "kdfparams.dklen"}
	}

	salt, err := hex.DecodeString(params.Salt)
	if err != nil {
		return nil, &ParseError{Field: "kdfparams.salt", Err: err}
	}

	return pbkdf2.Key([]byte(password), salt, params.C, params.DKLen, sha256.New), nil
}

// verifyMAC recomputes Keccak256(derivedKey[16:32] + ciphertext) and compares
// the first 16 bytes against the stored MAC in constant time.
func verifyMAC(derivedKey []byte, parsed *parsedKeystore) error {
	mac := crypto.Keccak256(derivedKey[16:32], parsed.ciphertext)
	if !constantTimeCompare(mac[:macLength], parsed.mac[:macLength]) {
		return ErrMACMismatch
	}

	return nil
}

// decrypt dispatches on the cipher. Only aes-128-ctr is supported; anything
// else, including aes-128-cbc, is rejected.
func decrypt(parsed *parsedKeystore, derivedKey []byte) ([]byte, error) {
	if parsed.cipher != cipherAES128CTR {
		return nil, errors.Wrapf(ErrUnsupportedCipher, "cipher %q", parsed.cipher)
	}

	return decryptAES128CTR(derivedKey[:16], parsed.iv, parsed.ciphertext)
}

// decryptAES128CTR decrypts data using AES-128-CTR mode
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func decryptAES128CTR(key []byte, iv []byte, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(plaintext, ciphertext)

	return plaintext, nil
}

// constantTimeCompare performs constant-time comparison of two byte slices
//
//nolint:varnamelen // a and b are standard parameter names for comparison functions
func constantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	result := 0
	for i := 0; i < len(a); i++ {
		result |= int(a[i] ^ b[i])
	}

	return result == 0
}
