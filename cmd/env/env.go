package env

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the resolved configuration",
		Long: `Prints the configuration resolved from WALLETCORE_* environment
variables (with defaults applied) as indented JSON.`,
		Run: func(_ *cobra.Command, _ []string) {
			runEnv()
		},
	}
}

func runEnv() {
	cfg := config.DefaultServiceConfigFromEnv()

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal the resolved config")
	}

	//nolint:forbidigo // Printing the resolved config is the point of this command
	fmt.Println(string(out))
}
