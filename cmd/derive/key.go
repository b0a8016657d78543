package derive

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newKey() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Derives a chain private key from a seed",
		Long: `Derives the raw private key for a chain and account index from a
BIP39 mnemonic or a raw hex seed.

The key is printed to stdout as plain hex. Handle with care; prefer
piping it straight into "walletcore keystore create --key-file -".`,
		Run: func(cmd *cobra.Command, _ []string) {
			runKey(cmd.Context(), parseSeedFlags(cmd))
		},
	}

	addSeedFlags(cmd)

	return cmd
}

func runKey(ctx context.Context, flags seedFlags) {
	_, privateKeyHex, err := derivePrivateKey(ctx, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive private key")
	}

	//nolint:forbidigo // The derived key is the requested command output
	fmt.Println(privateKeyHex)
}
