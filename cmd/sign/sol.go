package sign

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/wallet/signer"
)

func newSol() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sol",
		Short: "Signs a Solana transfer intent offline",
		Long: `Signs a Solana transfer intent bound to a recent blockhash and prints
the base64 Ed25519 signature.`,
		Run: func(cmd *cobra.Command, _ []string) {
			req, keyFile := parseSolFlags(cmd)
			runSol(cmd.Context(), req, keyFile)
		},
	}

	addKeyFileFlag(cmd)
	cmd.Flags().String(toFlag, "", "Recipient public key (base58)")
	cmd.Flags().String(valueFlag, "", "Amount in lamports")
	cmd.Flags().String(blockhashFlag, "", "Recent blockhash the intent is bound to (base58)")

	_ = cmd.MarkFlagRequired(toFlag)
	_ = cmd.MarkFlagRequired(valueFlag)
	_ = cmd.MarkFlagRequired(blockhashFlag)

	return cmd
}

// parseSolFlags reads the sol signing flags into a request without key
// material; flag lookup failures abort.
func parseSolFlags(cmd *cobra.Command) (*signer.SignSolanaRequest, string) {
	var (
		req     signer.SignSolanaRequest
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

	if req.RecentBlockhash, err = cmd.Flags().GetString(blockhashFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	return &req, keyFile
}

func runSol(ctx context.Context, req *signer.SignSolanaRequest, keyFile string) {
	privateKey, err := resolvePrivateKey(keyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read private key")
	}

	req.PrivateKey = privateKey

	signerService, err := signer.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create signer service")
	}

	resp, err := signerService.SignSolanaTransaction(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign transfer intent")
	}

	//nolint:forbidigo // The signature is the command output
	fmt.Println(resp.Signature)
}
