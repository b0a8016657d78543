package signer

import (
	"context"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/keys"
)

// maxValueBits bounds transfer values to the 128-bit balance range.
const maxValueBits = 128

// SignEthereumTransaction signs a plain EIP-155 legacy value transfer. Any
// calldata on the request is ignored.
func (s *service) SignEthereumTransaction(ctx context.Context, req *SignEthereumRequest) (*SignEthereumResponse, error) {
	plain := *req
	plain.Data = ""

	return s.SignEthereumTransactionWithData(ctx, &plain)
}

// SignEthereumTransactionWithData signs a legacy EIP-155 transaction
// including calldata
func (s *service) SignEthereumTransactionWithData(ctx context.Context, req *SignEthereumRequest) (*SignEthereumResponse, error) {
	log := util.LogFromContext(ctx)

	if req.ChainID < 1 {
		return nil, errors.Wrapf(ErrInvalidChainID, "chain id %d", req.ChainID)
	}

	if !common.IsHexAddress(req.To) {
		return nil, errors.Wrapf(ErrInvalidAddress, "to address %q", req.To)
	}

	value, err := parseAmount(req.Value, maxValueBits)
	if err != nil {
		return nil, errors.Wrap(err, "value")
	}

	gasPrice, err := parseAmount(req.GasPrice, 0)
	if err != nil {
		return nil, errors.Wrap(err, "gas price")
	}

	data, err := parseData(req.Data)
	if err != nil {
		return nil, err
	}

	privateKey, err := keys.ParsePrivateKey(req.PrivateKey)
	if err != nil {
		return nil, err
	}

	// Clear private key after use
	defer util.ZeroBytes(privateKey)

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert private key to ECDSA")
	}
	defer keys.ZeroECDSA(ecdsaPrivateKey)

	toAddress := common.HexToAddress(req.To)

	//nolint:varnamelen // tx is a common abbreviation for transaction
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: gasPrice,
		Gas:      req.GasLimit,
		To:       &toAddress,
		Value:    value,
		Data:     data,
	})

	// EIP-155: the hash covers [nonce, gasPrice, gas, to, value, data,
	// chainId, 0, 0] and v becomes 35 + 2*chainId + recovery id.
	signer := types.NewEIP155Signer(big.NewInt(req.ChainID))
	signedTx, err := types.SignTx(tx, signer, ecdsaPrivateKey)
	if err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "failed to sign transaction: %v", err)
	}

	txBytes, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, errors.Wrapf(ErrSigningFailed, "failed to marshal transaction: %v", err)
	}

	log.Debug().Int64("chain_id", req.ChainID).Uint64("nonce", req.Nonce).Msg("Signed EVM transaction")

	return &SignEthereumResponse{
		RawTransaction: "0x" + hex.EncodeToString(txBytes),
		TxHash:         signedTx.Hash().Hex(),
	}, nil
}

// parseAmount parses a non-negative decimal integer string. A maxBits > 0
// additionally bounds the bit length.
func parseAmount(amount string, maxBits int) (*big.Int, error) {
	const base10 = 10

	value, ok := new(big.Int).SetString(amount, base10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAmount, "not a decimal integer: %q", amount)
	}

	if value.Sign() < 0 {
		return nil, errors.Wrapf(ErrInvalidAmount, "negative amount %q", amount)
	}

	if maxBits > 0 && value.BitLen() > maxBits {
		return nil, errors.Wrapf(ErrInvalidAmount, "amount %q exceeds %d bits", amount, maxBits)
	}

	return value, nil
}

func parseData(dataHex string) ([]byte, error) {
	if dataHex == "" {
		return nil, nil
	}

	data, err := hex.DecodeString(strings.TrimPrefix(dataHex, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode data hex")
	}

	return data, nil
}
