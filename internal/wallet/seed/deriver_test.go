package seed_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/multichain/go-walletcore/internal/wallet/chain"
	"github/multichain/go-walletcore/internal/wallet/seed"
)

// bip39Seed of the well-known test mnemonic
// "abandon abandon ... about" with an empty passphrase.
const bip39Seed = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1" +
	"9a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

func newDeriver(t *testing.T, seedHex string) seed.Deriver {
	t.Helper()

	raw, err := hex.DecodeString(seedHex)
	require.NoError(t, err)

	d, err := seed.NewDeriver(raw)
	require.NoError(t, err)
	t.Cleanup(d.Clear)

	return d
}

func newZeroSeedDeriver(t *testing.T) seed.Deriver {
	t.Helper()

	d, err := seed.NewDeriver(make([]byte, 64))
	require.NoError(t, err)
	t.Cleanup(d.Clear)

	return d
}

func TestDerivePrivateKeyVectors(t *testing.T) {
	d := newZeroSeedDeriver(t)
	ctx := context.Background()

	tests := []struct {
		chain chain.Chain
		index uint32
		want  string
	}{
		{chain.Ethereum, 0, "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a"},
		{chain.Ethereum, 1, "df9e20233f36fb0b68edbb556a7af779c7d1706e10773950ebb23795c366a9ef"},
		{chain.Bitcoin, 0, "13f2a9a416a4cf5dd3eab5261c4e84646b70974b6d64c1b00d511888fcf7a1e1"},
		{chain.Bitcoin, 1, "9c11d7a89b08821d1ccf6f2bb19c988cad4722a24eeba09f52a893d2dc7d8fc8"},
		{chain.Solana, 0, "7d184306a8452a59ec35de35de703658252743e31f8aaa5491d8b08c1c8f1904"},
		{chain.Solana, 1, "00020f42befe2e936b6c01cc96e0fff84becaf3db59fcf2be2ba4d64d074d7c8"},
		{chain.TON, 0, "e4eb84c208bf3f47d481a7097e8bd88b61d1422321a29ecea4b88d7dd3d366a4"},
		{chain.TON, 1, "55c5e886cb777cab0eb5bb05e35f800c0c713d9b6b30c5e0df7f904af697cbac"},
	}

	for _, tt := range tests {
		got, err := d.DerivePrivateKey(ctx, tt.chain, tt.index)
		require.NoError(t, err, "%s index %d", tt.chain, tt.index)
		assert.Equal(t, tt.want, got, "%s index %d", tt.chain, tt.index)
	}
}

func TestDerivePrivateKeyKnownMnemonicSeed(t *testing.T) {
	d := newDeriver(t, bip39Seed)

	got, err := d.DerivePrivateKey(context.Background(), chain.Ethereum, 0)
	require.NoError(t, err)
	assert.Equal(t, "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", got)
}

func TestDerivePrivateKeyDeterminism(t *testing.T) {
	d := newZeroSeedDeriver(t)
	ctx := context.Background()

	for _, c := range chain.All() {
		first, err := d.DerivePrivateKey(ctx, c, 3)
		require.NoError(t, err)

		second, err := d.DerivePrivateKey(ctx, c, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second, c.String())
		assert.Len(t, first, 64, c.String())
	}
}

func TestDerivePrivateKeyDistinctAcrossChainsAndIndexes(t *testing.T) {
	d := newZeroSeedDeriver(t)
	ctx := context.Background()

	seen := map[string]string{}
	for _, c := range chain.All() {
		for _, index := range []uint32{0, 1, 2} {
			key, err := d.DerivePrivateKey(ctx, c, index)
			require.NoError(t, err)

			if prev, ok := seen[key]; ok {
				t.Fatalf("key collision between %s/%d and %s", c, index, prev)
			}
			seen[key] = c.String()
		}
	}
}

func TestNewDeriverSeedLength(t *testing.T) {
	_, err := seed.NewDeriver(make([]byte, 15))
	assert.ErrorIs(t, err, seed.ErrInvalidSeedLength)

	_, err = seed.NewDeriver(make([]byte, 65))
	assert.ErrorIs(t, err, seed.ErrInvalidSeedLength)

	_, err = seed.NewDeriver(nil)
	assert.ErrorIs(t, err, seed.ErrInvalidSeedLength)

	d, err := seed.NewDeriver(make([]byte, 16))
	require.NoError(t, err)
	d.Clear()

	d, err = seed.NewDeriver(make([]byte, 64))
	require.NoError(t, err)
	d.Clear()
}

func TestDeriverOwnsSeedCopy(t *testing.T) {
	raw := make([]byte, 64)

	d, err := seed.NewDeriver(raw)
	require.NoError(t, err)
	t.Cleanup(d.Clear)

	// Mutating the caller's buffer must not affect the deriver.
	for i := range raw {
		raw[i] = 0xff
	}

	got, err := d.DerivePrivateKey(context.Background(), chain.Ethereum, 0)
	require.NoError(t, err)
	assert.Equal(t, "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a", got)
}

func TestCloneIsIndependent(t *testing.T) {
	d := newZeroSeedDeriver(t)
	ctx := context.Background()

	clone := d.Clone()
	t.Cleanup(clone.Clear)

	d.Clear()

	// Original is unusable after Clear.
	_, err := d.DerivePrivateKey(ctx, chain.Ethereum, 0)
	require.Error(t, err)

	// The clone still derives from its own seed copy.
	got, err := clone.DerivePrivateKey(ctx, chain.Ethereum, 0)
	require.NoError(t, err)
	assert.Equal(t, "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a", got)
}

func TestClearIsIdempotent(t *testing.T) {
	d := newZeroSeedDeriver(t)

	d.Clear()
	d.Clear()

	_, err := d.DerivePrivateKey(context.Background(), chain.Ethereum, 0)
	require.Error(t, err)
}
