package derive

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/wallet/address"
	"github/multichain/go-walletcore/internal/wallet/chain"
)

const friendlyFlag string = "friendly"

func newAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derives a chain address from a seed",
		Long: `Derives the address for a chain and account index from a BIP39
mnemonic or a raw hex seed.

The seed and the intermediate private key never leave the process;
only the address is printed.`,
		Run: func(cmd *cobra.Command, _ []string) {
			flags := parseSeedFlags(cmd)

			friendly, err := cmd.Flags().GetBool(friendlyFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			runAddress(cmd.Context(), flags, friendly)
		},
	}

	addSeedFlags(cmd)
	cmd.Flags().Bool(friendlyFlag, false, "Print the bounceable base64url form instead of the raw address (TON only)")

	return cmd
}

func runAddress(ctx context.Context, flags seedFlags, friendly bool) {
	targetChain, privateKeyHex, err := derivePrivateKey(ctx, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive private key")
	}

	addressService, err := address.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create address service")
	}

	walletAddress, err := addressService.Address(ctx, targetChain, privateKeyHex)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive address")
	}

	if friendly {
		if targetChain != chain.TON {
			log.Fatal().Str("chain", targetChain.String()).Msg("--friendly is only supported for ton")
		}

		walletAddress, err = address.FriendlyTONAddress(walletAddress)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render friendly address")
		}
	}

	//nolint:forbidigo // The derived address is the command output
	fmt.Println(walletAddress)
}
