package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/cmd/derive"
	"github/multichain/go-walletcore/cmd/env"
	"github/multichain/go-walletcore/cmd/keystore"
	"github/multichain/go-walletcore/cmd/sign"
	"github/multichain/go-walletcore/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "walletcore",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

An offline multi-chain wallet toolbox written in Go.
Derives keys and addresses, handles Web3 keystore files and signs
transactions without ever talking to a network.
Requires configuration through ENV.`, config.ModuleName),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogger(config.DefaultServiceConfigFromEnv().Logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		derive.New(),
		env.New(),
		keystore.New(),
		sign.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}

// configureLogger applies the env-resolved logger settings to the global
// zerolog logger before any subcommand runs. The console writer goes to
// stderr so stdout stays reserved for command output.
func configureLogger(cfg config.Logger) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.ParsedLevel())

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
