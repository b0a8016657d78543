package derive

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/util/command"
	"github/multichain/go-walletcore/internal/wallet/chain"
	"github/multichain/go-walletcore/internal/wallet/seed"
)

const (
	chainFlag      string = "chain"
	indexFlag      string = "index"
	mnemonicFlag   string = "mnemonic"
	passphraseFlag string = "passphrase"
	seedHexFlag    string = "seed-hex"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("derive",
		newAddress(),
		newKey(),
	)
}

// seedFlags carries the flag values shared by the derive subcommands.
type seedFlags struct {
	chainName  string
	index      uint32
	mnemonic   string
	passphrase string
	seedHex    string
}

// addSeedFlags registers the flags shared by the derive subcommands.
func addSeedFlags(cmd *cobra.Command) {
	cmd.Flags().String(chainFlag, "", "Target chain (ethereum|bitcoin|solana|ton)")
	cmd.Flags().Uint32(indexFlag, 0, "Account index within the chain's derivation path")
	cmd.Flags().String(mnemonicFlag, "", "BIP39 mnemonic sentence the seed is derived from")
	cmd.Flags().String(passphraseFlag, "", "Optional BIP39 passphrase (only with --mnemonic)")
	cmd.Flags().String(seedHexFlag, "", "Raw seed as hex (alternative to --mnemonic)")

	_ = cmd.MarkFlagRequired(chainFlag)
	cmd.MarkFlagsOneRequired(mnemonicFlag, seedHexFlag)
	cmd.MarkFlagsMutuallyExclusive(mnemonicFlag, seedHexFlag)
}

// parseSeedFlags reads the shared derive flags; flag lookup failures abort.
func parseSeedFlags(cmd *cobra.Command) seedFlags {
	var (
		flags seedFlags
		err   error
	)

	if flags.chainName, err = cmd.Flags().GetString(chainFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if flags.index, err = cmd.Flags().GetUint32(indexFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if flags.mnemonic, err = cmd.Flags().GetString(mnemonicFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if flags.passphrase, err = cmd.Flags().GetString(passphraseFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	if flags.seedHex, err = cmd.Flags().GetString(seedHexFlag); err != nil {
		log.Fatal().Err(err).Msg("Error while parsing flags")
	}

	return flags
}

// resolveSeed turns the seed flags into raw seed bytes. The caller owns the
// returned buffer and zeroes it after use.
func resolveSeed(flags seedFlags) ([]byte, error) {
	if flags.mnemonic != "" {
		seedBytes, err := bip39.NewSeedWithErrorChecking(flags.mnemonic, flags.passphrase)
		if err != nil {
			return nil, errors.Wrap(err, "failed to derive seed from mnemonic")
		}

		return seedBytes, nil
	}

	seedBytes, err := hex.DecodeString(strings.TrimPrefix(flags.seedHex, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode seed hex")
	}

	return seedBytes, nil
}

// derivePrivateKey resolves the seed, derives the private key for the
// requested chain and index and zeroes the seed again before returning.
func derivePrivateKey(ctx context.Context, flags seedFlags) (chain.Chain, string, error) {
	targetChain, err := chain.Parse(flags.chainName)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to parse chain")
	}

	seedBytes, err := resolveSeed(flags)
	if err != nil {
		return 0, "", err
	}
	defer util.ZeroBytes(seedBytes)

	deriver, err := seed.NewDeriver(seedBytes)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to create seed deriver")
	}
	defer deriver.Clear()

	privateKeyHex, err := deriver.DerivePrivateKey(ctx, targetChain, flags.index)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to derive private key")
	}

	return targetChain, privateKeyHex, nil
}
