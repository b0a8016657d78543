package chain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Chain identifies a supported chain family. The set is closed on purpose:
// every switch over Chain must handle all four values, so adding a chain
// forces each call site to be revisited.
type Chain int

const (
	// Ethereum covers all EVM chains (mainnet, BSC, Polygon, testnets); they
	// share one derivation path and one address format.
	Ethereum Chain = iota
	// Bitcoin uses BIP84 native-segwit derivation.
	Bitcoin
	// Solana uses SLIP-0010 Ed25519 derivation.
	Solana
	// TON uses SLIP-0010 Ed25519 derivation with a longer hardened path.
	TON
)

// Curve identifies the signature curve a chain's keys live on.
type Curve int

const (
	// CurveSecp256k1 is used by Ethereum and Bitcoin.
	CurveSecp256k1 Curve = iota
	// CurveEd25519 is used by Solana and TON.
	CurveEd25519
)

// ErrUnsupportedChain is returned when a chain value is outside the closed
// set above (or a chain name cannot be parsed).
var ErrUnsupportedChain = errors.New("unsupported chain")

// All returns every supported chain, in declaration order.
func All() []Chain {
	return []Chain{Ethereum, Bitcoin, Solana, TON}
}

// String returns the canonical lowercase chain name.
func (c Chain) String() string {
	switch c {
	case Ethereum:
		return "ethereum"
	case Bitcoin:
		return "bitcoin"
	case Solana:
		return "solana"
	case TON:
		return "ton"
	default:
		return fmt.Sprintf("chain(%d)", int(c))
	}
}

// Parse resolves a chain name (canonical or common short form) to a Chain.
func Parse(name string) (Chain, error) {
	switch name {
	case "ethereum", "eth", "evm":
		return Ethereum, nil
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "solana", "sol":
		return Solana, nil
	case "ton":
		return TON, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedChain, "unknown chain name %q", name)
	}
}

// Curve returns the signature curve of the chain's key material.
func (c Chain) Curve() (Curve, error) {
	switch c {
	case Ethereum, Bitcoin:
		return CurveSecp256k1, nil
	case Solana, TON:
		return CurveEd25519, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedChain, "chain %d", int(c))
	}
}

// DerivationPath renders the chain's fixed derivation path with index as the
// final component:
//   - Ethereum: m/44'/60'/0'/0/{index}         (BIP44, final component public)
//   - Bitcoin:  m/84'/0'/0'/0/{index}          (BIP84 native segwit)
//   - Solana:   m/44'/501'/0'/{index}'         (SLIP-0010, fully hardened)
//   - TON:      m/44'/607'/0'/0'/0'/{index}'   (SLIP-0010, fully hardened)
func (c Chain) DerivationPath(index uint32) (string, error) {
	switch c {
	case Ethereum:
		return fmt.Sprintf("m/44'/60'/0'/0/%d", index), nil
	case Bitcoin:
		return fmt.Sprintf("m/84'/0'/0'/0/%d", index), nil
	case Solana:
		return fmt.Sprintf("m/44'/501'/0'/%d'", index), nil
	case TON:
		return fmt.Sprintf("m/44'/607'/0'/0'/0'/%d'", index), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedChain, "chain %d", int(c))
	}
}
