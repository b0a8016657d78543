package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/multichain/go-walletcore/internal/wallet/chain"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		name string
		want chain.Chain
	}{
		{"ethereum", chain.Ethereum},
		{"eth", chain.Ethereum},
		{"evm", chain.Ethereum},
		{"bitcoin", chain.Bitcoin},
		{"btc", chain.Bitcoin},
		{"solana", chain.Solana},
		{"sol", chain.Solana},
		{"ton", chain.TON},
	}

	for _, tt := range tests {
		got, err := chain.Parse(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := chain.Parse("dogecoin")
	require.Error(t, err)
	assert.ErrorIs(t, err, chain.ErrUnsupportedChain)
}

func TestStringRoundTrip(t *testing.T) {
	for _, c := range chain.All() {
		parsed, err := chain.Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestCurve(t *testing.T) {
	curve, err := chain.Ethereum.Curve()
	require.NoError(t, err)
	assert.Equal(t, chain.CurveSecp256k1, curve)

	curve, err = chain.Bitcoin.Curve()
	require.NoError(t, err)
	assert.Equal(t, chain.CurveSecp256k1, curve)

	curve, err = chain.Solana.Curve()
	require.NoError(t, err)
	assert.Equal(t, chain.CurveEd25519, curve)

	curve, err = chain.TON.Curve()
	require.NoError(t, err)
	assert.Equal(t, chain.CurveEd25519, curve)

	_, err = chain.Chain(42).Curve()
	assert.ErrorIs(t, err, chain.ErrUnsupportedChain)
}

func TestDerivationPath(t *testing.T) {
	tests := []struct {
		chain chain.Chain
		index uint32
		want  string
	}{
		{chain.Ethereum, 0, "m/44'/60'/0'/0/0"},
		{chain.Ethereum, 7, "m/44'/60'/0'/0/7"},
		{chain.Bitcoin, 0, "m/84'/0'/0'/0/0"},
		{chain.Bitcoin, 3, "m/84'/0'/0'/0/3"},
		{chain.Solana, 0, "m/44'/501'/0'/0'"},
		{chain.Solana, 2, "m/44'/501'/0'/2'"},
		{chain.TON, 0, "m/44'/607'/0'/0'/0'/0'"},
		{chain.TON, 9, "m/44'/607'/0'/0'/0'/9'"},
	}

	for _, tt := range tests {
		got, err := tt.chain.DerivationPath(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := chain.Chain(42).DerivationPath(0)
	assert.ErrorIs(t, err, chain.ErrUnsupportedChain)
}
