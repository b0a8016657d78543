package keystore

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
	chainFlag   string = "chain"
	keyFileFlag string = "key-file"
	outFlag     string = "out"
	showKeyFlag string = "show-key"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newCreate(),
		newDecrypt(),
	)
}

// readPrivateKey loads the key hex from the given file ("-" for stdin) or
// falls back to a hidden terminal prompt, keeping keys out of argv.
func readPrivateKey(keyFile string) (string, error) {
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
