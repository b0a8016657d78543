package sign

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/wallet/signer"
)

func newBtc() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "btc",
		Short: "Signs a Bitcoin transfer intent offline",
		Long: `Signs a single-recipient Bitcoin transfer intent and prints the JSON
envelope. The envelope is an auditable signing artifact, not a
broadcast-ready transaction; it carries no UTXO inputs.`,
		Run: func(cmd *cobra.Command, _ []string) {
			req, keyFile := parseBtcFlags(cmd)
			runBtc(cmd.Context(), req, keyFile)
		},
	}

	addKeyFileFlag(cmd)
	cmd.Flags().String(toFlag, "", "Recipient mainnet address")
	cmd.Flags().Uint64(valueFlag, 0, "Amount in satoshi")
	cmd.Flags().Uint64(feeRateFlag, 1, "Fee rate in sat/vB")

	_ = cmd.MarkFlagRequired(toFlag)
	_ = cmd.MarkFlagRequired(valueFlag)

	return cmd
}

// parseBtcFlags reads the btc signing flags into a request without key
// material; flag lookup failures abort.
func parseBtcFlags(cmd *cobra.Command) (*signer.SignBitcoinRequest, string) {
	var (
		req     signer.SignBitcoinRequest
		keyFile string
		err     error
	)

	if keyFile, err = cmd.Flags().GetString(keyFileFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.To, err = cmd.Flags().GetString(toFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.Value, err = cmd.Flags().GetUint64(valueFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.FeeRate, err = cmd.Flags().GetUint64(feeRateFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	return &req, keyFile
}

func runBtc(ctx context.Context, req *signer.SignBitcoinRequest, keyFile string) {
	privateKey, err := resolvePrivateKey(keyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read private key")
	}

	req.PrivateKey = privateKey

	signerService, err := signer.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer service")
	}

	resp, err := signerService.SignBitcoinTransaction(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign transfer intent")
	}

	//nolint:forbidigo // The signed envelope is the command output
	fmt.Println(resp.Envelope)
}
