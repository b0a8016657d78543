package address

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const (
	// tonBounceableTag marks a bounceable production address in the friendly form.
	tonBounceableTag = 0x11
	// tonBasechain is the workchain id of the TON basechain.
	tonBasechain = 0x00
)

// tonAddress derives the raw TON address for an Ed25519 private key: the
// basechain workchain id and the SHA-256 of the public key as "0:<hex>".
func (s *service) tonAddress(privateKeyHex string) (string, error) {
	publicKey, err := ed25519PublicKey(privateKeyHex)
	if err != nil {
		return "", err
	}

	accountID := sha256.Sum256(publicKey)

	return "0:" + hex.EncodeToString(accountID[:]), nil
}

// FriendlyTONAddress converts a raw "0:<hex>" address into the bounceable
// base64url form used by wallets: tag byte, workchain byte, the 32-byte
// account id and a CRC16-XMODEM checksum over the preceding 34 bytes.
func FriendlyTONAddress(rawAddress string) (string, error) {
	workchain, accountHex, found := strings.Cut(rawAddress, ":")
	if !found || workchain != "0" {
		return "", errors.Errorf("malformed raw TON address: %q", rawAddress)
	}

	accountID, err := hex.DecodeString(accountHex)
	if err != nil || len(accountID) != sha256.Size {
		return "", errors.Errorf("malformed raw TON address: %q", rawAddress)
	}

	data := make([]byte, 0, len(accountID)+4)
	data = append(data, tonBounceableTag, tonBasechain)
	data = append(data, accountID...)

	checksum := crc16XModem(data)
	data = append(data, byte(checksum>>8), byte(checksum))

	return base64.RawURLEncoding.EncodeToString(data), nil
}

// crc16XModem computes CRC16 with the XMODEM polynomial (0x1021, zero init),
// the checksum TON uses for friendly addresses.
func crc16XModem(data []byte) uint16 {
	const polynomial = 0x1021

	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ polynomial
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
