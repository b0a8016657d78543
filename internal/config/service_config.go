package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Service is the top-level configuration for the CLI. The core wallet
// packages never read the environment themselves; everything they need is
// passed in as arguments.
type Service struct {
	Logger   Logger
	Keystore Keystore
}

// Logger holds the zerolog configuration.
type Logger struct {
	Level              string
	PrettyPrintConsole bool
}

// Keystore holds the defaults used when creating new keystore documents.
type Keystore struct {
	ScryptN int
	ScryptR int
	ScryptP int
}

// ParsedLevel returns the configured zerolog level, falling back to info on
// unknown values.
func (l Logger) ParsedLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}

// DefaultServiceConfigFromEnv returns the service config resolved from
// WALLETCORE_* environment variables with sane defaults.
func DefaultServiceConfigFromEnv() Service {
	v := viper.New()
	v.SetEnvPrefix("walletcore")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty_print_console", true)
	v.SetDefault("keystore.scrypt_n", 262144)
	v.SetDefault("keystore.scrypt_r", 8)
	v.SetDefault("keystore.scrypt_p", 1)

	return Service{
		Logger: Logger{
			Level:              v.GetString("logger.level"),
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
		Keystore: Keystore{
			ScryptN: v.GetInt("keystore.scrypt_n"),
			ScryptR: v.GetInt("keystore.scrypt_r"),
			ScryptP: v.GetInt("keystore.scrypt_p"),
		},
	}
}
