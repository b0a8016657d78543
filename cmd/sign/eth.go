package sign

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/wallet/signer"
)

func newEth() *cobra.Command {
	const defaultGasLimit uint64 = 21000

	cmd := &cobra.Command{
		Use:   "eth",
		Short: "Signs a legacy EIP-155 Ethereum transaction offline",
		Long: `Signs a legacy (pre-EIP-1559) Ethereum transaction with EIP-155
replay protection and prints the raw RLP payload plus its hash as
JSON. Nothing is broadcast; feed the raw transaction to any node or
provider yourself.`,
		Run: func(cmd *cobra.Command, _ []string) {
			req, keyFile := parseEthFlags(cmd)
			runEth(cmd.Context(), req, keyFile)
		},
	}

	addKeyFileFlag(cmd)
	cmd.Flags().Int64(chainIDFlag, 1, "EIP-155 chain id")
	cmd.Flags().String(toFlag, "", "Recipient address (0x hex)")
	cmd.Flags().String(valueFlag, "0", "Amount in wei")
	cmd.Flags().String(gasPriceFlag, "", "Gas price in wei")
	cmd.Flags().Uint64(gasLimitFlag, defaultGasLimit, "Gas limit")
	cmd.Flags().Uint64(nonceFlag, 0, "Transaction nonce")
	cmd.Flags().String(dataFlag, "", "Optional calldata as hex")

	_ = cmd.MarkFlagRequired(toFlag)
	_ = cmd.MarkFlagRequired(gasPriceFlag)

	return cmd
}

// parseEthFlags reads the eth signing flags into a request without key
// material; flag lookup failures abort.
func parseEthFlags(cmd *cobra.Command) (*signer.SignEthereumRequest, string) {
	var (
		req     signer.SignEthereumRequest
		keyFile string
		err     error
	)

	if keyFile, err = cmd.Flags().GetString(keyFileFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.ChainID, err = cmd.Flags().GetInt64(chainIDFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.To, err = cmd.Flags().GetString(toFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.Value, err = cmd.Flags().GetString(valueFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.GasPrice, err = cmd.Flags().GetString(gasPriceFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.GasLimit, err = cmd.Flags().GetUint64(gasLimitFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.Nonce, err = cmd.Flags().GetUint64(nonceFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.Data, err = cmd.Flags().GetString(dataFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	return &req, keyFile
}

func runEth(ctx context.Context, req *signer.SignEthereumRequest, keyFile string) {
	privateKey, err := resolvePrivateKey(keyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read private key")
	}

	req.PrivateKey = privateKey

	signerService, err := signer.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer service")
	}

	resp, err := signerService.SignEthereumTransactionWithData(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign transaction")
	}

	out, err := json.Marshal(struct {
		RawTransaction string `json:"raw_transaction"`
		TxHash         string `json:"tx_hash"`
	}{resp.RawTransaction, resp.TxHash})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal response")
	}

	//nolint:forbidigo // The signed payload is the command output
	fmt.Println(string(out))
}
