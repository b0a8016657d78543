package keystore

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/config"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/wallet/address"
	"github/multichain/go-walletcore/internal/wallet/chain"
	walletkeystore "github/multichain/go-walletcore/internal/wallet/keystore"
)

func newDecrypt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <file>",
		Short: "Decrypts a Web3 keystore file",
		Long: `Decrypts a Web3 Secret Storage (V3) keystore file and prints the
address derived from the contained key.

The password is read from the terminal. The private key itself is
only printed when --show-key is set.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showKey, err := cmd.Flags().GetBool(showKeyFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			chainName, err := cmd.Flags().GetString(chainFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			runDecrypt(cmd.Context(), args[0], chainName, showKey)
		},
	}

	cmd.Flags().Bool(showKeyFlag, false, "Print the decrypted private key instead of the address")
	cmd.Flags().String(chainFlag, chain.Ethereum.String(), "Chain to derive the printed address for")

	return cmd
}

func runDecrypt(ctx context.Context, path string, chainName string, showKey bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to read keystore file")
	}

	password, err := util.PromptPassword("Enter keystore password: ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}

	cfg := config.DefaultServiceConfigFromEnv()

	keystoreService, err := walletkeystore.NewService(cfg.Keystore)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create keystore service")
	}

	privateKeyHex, err := keystoreService.DecryptKeystore(ctx, string(raw), password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decrypt keystore")
	}

	if showKey {
		//nolint:forbidigo // The decrypted key is the requested command output
		fmt.Println(privateKeyHex)

		return
	}

	targetChain, err := chain.Parse(chainName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse chain")
	}

	addressService, err := address.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create address service")
	}

	walletAddress, err := addressService.Address(ctx, targetChain, privateKeyHex)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to derive address")
	}

	//nolint:forbidigo // The derived address is the command output
	fmt.Println(walletAddress)
}
