package sign

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/multichain/go-walletcore/internal/util"
	"github/multichain/go-walletcore/internal/util/command"
)

const (
	blockhashFlag string = "recent-blockhash"
	chainIDFlag   string = "chain-id"
	dataFlag      string = "data"
	feeRateFlag   string = "fee-rate"
	gasLimitFlag  string = "gas-limit"
	gasPriceFlag  string = "gas-price"
	keyFileFlag   string = "key-file"
	nonceFlag     string = "nonce"
	seqnoFlag     string = "seqno"
	toFlag        string = "to"
	valueFlag     string = "value"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("sign",
		newBtc(),
		newEth(),
		newSol(),
		newTon(),
	)
}

// addKeyFileFlag registers the shared signing key source flag.
func addKeyFileFlag(cmd *cobra.Command) {
	cmd.Flags().String(keyFileFlag, "", "File containing the signing key hex, \"-\" for stdin (prompted when omitted)")
}

// resolvePrivateKey reads the signing key from the key file ("-" for stdin)
// when given and from a hidden terminal prompt otherwise, keeping keys out
// of argv and shell history.
func resolvePrivateKey(keyFile string) (string, error) {
	switch keyFile {
	case "":
		return util.PromptPassword("Enter private key hex: ")
	case "-":
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read key from stdin")
		}

		return strings.TrimSpace(string(raw)), nil
	default:
		raw, err := os.ReadFile(keyFile)
		if err != nil {
			return "", errors.Wrap(err, "failed to read key file")
		}

		return strings.TrimSpace(string(raw)), nil
	}
}
