package signer

import (
	"context"

	"github.com/pkg/errors"
)

// Service provides transaction signing functionality. Signing is
// deterministic: identical requests produce byte-identical payloads.
type Service interface {
	// SignEthereumTransaction signs a legacy EIP-155 value transfer
	SignEthereumTransaction(ctx context.Context, req *SignEthereumRequest) (*SignEthereumResponse, error)

	// SignEthereumTransactionWithData signs a legacy EIP-155 transaction including calldata
	SignEthereumTransactionWithData(ctx context.Context, req *SignEthereumRequest) (*SignEthereumResponse, error)

	// SignBitcoinTransaction signs a Bitcoin transfer intent into a JSON envelope
	SignBitcoinTransaction(ctx context.Context, req *SignBitcoinRequest) (*SignBitcoinResponse, error)

	// SignSolanaTransaction signs a Solana transfer intent
	SignSolanaTransaction(ctx context.Context, req *SignSolanaRequest) (*SignSolanaResponse, error)

	// SignTONTransaction signs a TON transfer intent
	SignTONTransaction(ctx context.Context, req *SignTONRequest) (*SignTONResponse, error)
}

// SignEthereumRequest represents a request to sign a legacy EIP-155 transaction
type SignEthereumRequest struct {
	PrivateKey string // Private key as hex (0x prefix optional)
	ChainID    int64  // Chain ID (1 for Ethereum mainnet, 56 for BSC, etc.), must be >= 1
	To         string // Recipient address (hex string with 0x prefix)
	Value      string // Amount in wei (as string to avoid precision loss), bounded to 128 bits
	GasPrice   string // Gas price in wei (as string)
	GasLimit   uint64 // Gas limit
	Nonce      uint64 // Transaction nonce
	Data       string // Optional calldata as hex; ignored by SignEthereumTransaction
}

// SignEthereumResponse represents a signed EIP-155 transaction
type SignEthereumResponse struct {
	RawTransaction string // 0x-prefixed RLP encoding of the signed transaction
	TxHash         string // Transaction hash (hex string with 0x prefix)
}

// SignBitcoinRequest represents a request to sign a Bitcoin transfer intent
type SignBitcoinRequest struct {
	PrivateKey string // Private key as hex (0x prefix optional)
	To         string // Recipient address (mainnet bech32 or legacy)
	Value      uint64 // Amount in satoshi
	FeeRate    uint64 // Fee rate in sat/vB
}

// SignBitcoinResponse carries the signed JSON transfer envelope
type SignBitcoinResponse struct {
	Envelope string // JSON envelope: type, to, value, fee_rate, private_key_hash, signature
}

// SignSolanaRequest represents a request to sign a Solana transfer intent
type SignSolanaRequest struct {
	PrivateKey      string // Private key as hex (0x prefix optional)
	To              string // Recipient public key (base58)
	Value           string // Amount in lamports (as string)
	RecentBlockhash string // Recent blockhash (base58) binding the intent
}

// SignSolanaResponse carries the base64 Ed25519 signature
type SignSolanaResponse struct {
	Signature string
}

// SignTONRequest represents a request to sign a TON transfer intent
type SignTONRequest struct {
	PrivateKey string // Private key as hex (0x prefix optional)
	To         string // Recipient raw address ("0:<hex>")
	Value      string // Amount in nanoton (as string)
	Seqno      uint32 // Wallet sequence number binding the intent
}

// SignTONResponse carries the base64 Ed25519 signature
type SignTONResponse struct {
	Signature string
}

var (
	// ErrInvalidAmount is returned when a decimal amount string cannot be
	// parsed into the chain's integer unit or exceeds its range.
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidAddress is returned when a recipient address fails validation.
	ErrInvalidAddress = errors.New("invalid address format")

	// ErrInvalidChainID is returned for chain ids below 1, which EIP-155
	// cannot protect.
	ErrInvalidChainID = errors.New("invalid chain id")

	// ErrSigningFailed wraps failures inside the signing primitives.
	ErrSigningFailed = errors.New("signing failed")
)
