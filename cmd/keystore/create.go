package keystore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/config"
	"github/multichain/go-walletcore/internal/util"
	walletkeystore "github/multichain/go-walletcore/internal/wallet/keystore"
)

func newCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a Web3 keystore file from a private key",
		Long: `Encrypts a private key into a Web3 Secret Storage (V3) keystore file.

The key is read from --key-file when given ("-" for stdin) and from a
hidden terminal prompt otherwise, so it never shows up in shell
history. Derive a key first if needed:

  walletcore derive key --chain ethereum --index 0 --mnemonic "..." |
    walletcore keystore create --key-file - --out keystore.json`,
		Run: func(cmd *cobra.Command, _ []string) {
			keyFile, err := cmd.Flags().GetString(keyFileFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			out, err := cmd.Flags().GetString(outFlag)
			if err != nil {
				log.Fatal().Err(err).Msg("Error while parsing flags")
			}

			runCreate(cmd.Context(), keyFile, out)
		},
	}

	cmd.Flags().String(keyFileFlag, "", "File containing the private key hex, \"-\" for stdin (prompted when omitted)")
	cmd.Flags().String(outFlag, "keystore.json", "Path the keystore JSON is written to")

	return cmd
}

func runCreate(ctx context.Context, keyFile string, out string) {
	const minPasswordLength = 8

	// keystore files hold encrypted key material, keep them owner-only
	const keystoreFileMode os.FileMode = 0o600

	privateKeyHex, err := readPrivateKey(keyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read private key")
	}

	password, err := util.PromptPassword("Enter password for keystore (min 8 characters): ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password")
	}

	if len(password) < minPasswordLength {
		log.Fatal().Msg("Password must be at least 8 characters")
	}

	passwordConfirm, err := util.PromptPassword("Confirm password: ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read password confirmation")
	}

	if password != passwordConfirm {
		log.Fatal().Msg("Passwords do not match")
	}

	cfg := config.DefaultServiceConfigFromEnv()

	keystoreService, err := walletkeystore.NewService(cfg.Keystore)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create keystore service")
	}

	document, err := keystoreService.EncryptKey(ctx, privateKeyHex, password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encrypt private key")
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal keystore")
	}

	if err := os.WriteFile(out, data, keystoreFileMode); err != nil {
		log.Fatal().Err(err).Str("path", out).Msg("Failed to write keystore file")
	}

	log.Info().Str("path", out).Str("address", "0x"+document.Address).Msg("Keystore created")

	//nolint:forbidigo // The keystore address is the command output
	fmt.Println("0x" + document.Address)
}
