package sign

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/wallet/signer"
)

func newTon() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ton",
		Short: "Signs a TON transfer intent offline",
		Long: `Signs a TON transfer intent bound to the wallet's sequence number and
prints the base64 Ed25519 signature. The recipient is the raw
"0:<hex>" address form.`,
		Run: func(cmd *cobra.Command, _ []string) {
			req, keyFile := parseTonFlags(cmd)
			runTon(cmd.Context(), req, keyFile)
		},
	}

	addKeyFileFlag(cmd)
	cmd.Flags().String(toFlag, "", "Recipient raw address (\"0:<hex>\")")
	cmd.Flags().String(valueFlag, "", "Amount in nanoton")
	cmd.Flags().Uint32(seqnoFlag, 0, "Wallet sequence number the intent is bound to")

	_ = cmd.MarkFlagRequired(toFlag)
	_ = cmd.MarkFlagRequired(valueFlag)

	return cmd
}

// parseTonFlags reads the ton signing flags into a request without key
// material; flag lookup failures abort.
func parseTonFlags(cmd *cobra.Command) (*signer.SignTONRequest, string) {
	var (
		req     signer.SignTONRequest
		keyFile string
		err     error
	)

	if keyFile, err = cmd.Flags().GetString(keyFileFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.To, err = cmd.Flags().GetString(toFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.Value, err = cmd.Flags().GetString(valueFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if req.Seqno, err = cmd.Flags().GetUint32(seqnoFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	return &req, keyFile
}

func runTon(ctx context.Context, req *signer.SignTONRequest, keyFile string) {
	privateKey, err := resolvePrivateKey(keyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read private key")
	}

	req.PrivateKey = privateKey

	signerService, err := signer.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer service")
	}

	resp, err := signerService.SignTONTransaction(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign transfer intent")
	}

	//nolint:forbidigo // The signature is the command output
	fmt.Println(resp.Signature)
}
