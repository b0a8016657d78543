package address_test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/multichain/go-walletcore/internal/wallet/address"
	"github/multichain/go-walletcore/internal/wallet/chain"
	"github/multichain/go-walletcore/internal/wallet/keys"
	"github/multichain/go-walletcore/internal/wallet/seed"
)

// bip39Seed of the well-known test mnemonic
// "abandon abandon ... about" with an empty passphrase.
const bip39Seed = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1" +
	"9a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

func newService(t *testing.T) address.Service {
	t.Helper()

	svc, err := address.NewService()
	require.NoError(t, err)

	return svc
}

func TestAddressVectors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	// Keys are the all-zero 64-byte seed derivations at indexes 0 and 1.
	tests := []struct {
		name  string
		chain chain.Chain
		key   string
		want  string
	}{
		{
			name:  "ethereum index 0",
			chain: chain.Ethereum,
			key:   "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a",
			want:  "0xb73f8cc7b63c5ed98d6f7c7ba59c8094972b1166",
		},
		{
			name:  "ethereum index 1",
			chain: chain.Ethereum,
			key:   "df9e20233f36fb0b68edbb556a7af779c7d1706e10773950ebb23795c366a9ef",
			want:  "0x202968e49c2c038470ed6988e577fa5225fb4ada",
		},
		{
			name:  "ethereum accepts 0x prefix",
			chain: chain.Ethereum,
			key:   "0x761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a",
			want:  "0xb73f8cc7b63c5ed98d6f7c7ba59c8094972b1166",
		},
		{
			name:  "bitcoin index 0",
			chain: chain.Bitcoin,
			key:   "13f2a9a416a4cf5dd3eab5261c4e84646b70974b6d64c1b00d511888fcf7a1e1",
			want:  "bc1qenqxln48rmf3rj2yz33cn3gh0pf5czh4nk86ul",
		},
		{
			name:  "bitcoin index 1",
			chain: chain.Bitcoin,
			key:   "9c11d7a89b08821d1ccf6f2bb19c988cad4722a24eeba09f52a893d2dc7d8fc8",
			want:  "bc1q66dzqp40a2urxp32j34020lfs44mpwwdv4tv3l",
		},
		{
			name:  "solana index 0",
			chain: chain.Solana,
			key:   "7d184306a8452a59ec35de35de703658252743e31f8aaa5491d8b08c1c8f1904",
			want:  "AdDrLYramWa5Eoy5FYU6KyoxG6Nu1sL6XVacPmsF4heD",
		},
		{
			name:  "solana index 1",
			chain: chain.Solana,
			key:   "00020f42befe2e936b6c01cc96e0fff84becaf3db59fcf2be2ba4d64d074d7c8",
			want:  "774RtfRYmTePyrvj3Bp1mHd9BhNVzUhE7uG2iMVQ2dmQ",
		},
		{
			name:  "ton index 0",
			chain: chain.TON,
			key:   "e4eb84c208bf3f47d481a7097e8bd88b61d1422321a29ecea4b88d7dd3d366a4",
			want:  "0:4e5c86a6893d38a7893f182f380e24e75a6fd7c42a7e601d2f2f76ca35d6c6ff",
		},
		{
			name:  "ton index 1",
			chain: chain.TON,
			key:   "55c5e886cb777cab0eb5bb05e35f800c0c713d9b6b30c5e0df7f904af697cbac",
			want:  "0:178ffef7466b3cbb1f64e3e21bf4c9a2fb07eed7f074f86f7569a37f7b028101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Address(ctx, tt.chain, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestAddressPublishedVectors checks the full seed-to-address pipeline
// against the published BIP44 and BIP84 vectors for the well-known test
// mnemonic.
func TestAddressPublishedVectors(t *testing.T) {
	raw, err := hex.DecodeString(bip39Seed)
	require.NoError(t, err)

	deriver, err := seed.NewDeriver(raw)
	require.NoError(t, err)
	t.Cleanup(deriver.Clear)

	svc := newService(t)
	ctx := context.Background()

	ethKey, err := deriver.DerivePrivateKey(ctx, chain.Ethereum, 0)
	require.NoError(t, err)

	ethAddr, err := svc.Address(ctx, chain.Ethereum, ethKey)
	require.NoError(t, err)
	assert.Equal(t, "0x9858effd232b4033e47d90003d41ec34ecaeda94", ethAddr)

	btcKey, err := deriver.DerivePrivateKey(ctx, chain.Bitcoin, 0)
	require.NoError(t, err)

	btcAddr, err := svc.Address(ctx, chain.Bitcoin, btcKey)
	require.NoError(t, err)
	assert.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", btcAddr)
}

func TestPublicKeyVectors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		chain chain.Chain
		key   string
		want  string
	}{
		{
			name:  "solana index 0",
			chain: chain.Solana,
			key:   "7d184306a8452a59ec35de35de703658252743e31f8aaa5491d8b08c1c8f1904",
			want:  "8f009f298a07e1f832ba20082570a0ea7c59b19ec7d2b514cc29a6694b333ba6",
		},
		{
			name:  "solana index 1",
			chain: chain.Solana,
			key:   "00020f42befe2e936b6c01cc96e0fff84becaf3db59fcf2be2ba4d64d074d7c8",
			want:  "5ab37bd80d99cc67b93de98c15292a7b5d6bb9f515efd432ee90d67448dca9b7",
		},
		{
			name:  "ton index 0",
			chain: chain.TON,
			key:   "e4eb84c208bf3f47d481a7097e8bd88b61d1422321a29ecea4b88d7dd3d366a4",
			want:  "45d816d76530710bb5f7124bf2814f951bc2c169a0c249a7d43ec1a40395fe69",
		},
		{
			name:  "ton index 1",
			chain: chain.TON,
			key:   "55c5e886cb777cab0eb5bb05e35f800c0c713d9b6b30c5e0df7f904af697cbac",
			want:  "aa2ab33306b2dd3429b230b80d84ffb2284c54dfa2eed9f1f3c914fb65959539",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.PublicKey(ctx, tt.chain, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicKeyUnsupportedChains(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	key := "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a"

	_, err := svc.PublicKey(ctx, chain.Ethereum, key)
	assert.ErrorIs(t, err, chain.ErrUnsupportedChain)

	_, err = svc.PublicKey(ctx, chain.Bitcoin, key)
	assert.ErrorIs(t, err, chain.ErrUnsupportedChain)
}

func TestAddressInvalidKey(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, c := range chain.All() {
		t.Run(c.String(), func(t *testing.T) {
			_, err := svc.Address(ctx, c, "not-hex")
			assert.ErrorIs(t, err, keys.ErrInvalidKeyEncoding)

			// 31 bytes.
			_, err = svc.Address(ctx, c, "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe")
			assert.ErrorIs(t, err, keys.ErrInvalidKeyEncoding)

			_, err = svc.Address(ctx, c, "")
			assert.ErrorIs(t, err, keys.ErrInvalidKeyEncoding)
		})
	}

	_, err := svc.Address(ctx, chain.Chain(42), "761a3d94f077cebbbfb18e5e440049bb64530b0418888e4cdaa680fd7c4abe6a")
	assert.ErrorIs(t, err, chain.ErrUnsupportedChain)
}

func TestFriendlyTONAddress(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{
			raw:  "0:4e5c86a6893d38a7893f182f380e24e75a6fd7c42a7e601d2f2f76ca35d6c6ff",
			want: "EQBOXIamiT04p4k_GC84DiTnWm_XxCp-YB0vL3bKNdbG_8tp",
		},
		{
			raw:  "0:178ffef7466b3cbb1f64e3e21bf4c9a2fb07eed7f074f86f7569a37f7b028101",
			want: "EQAXj_73Rms8ux9k4-Ib9Mmi-wfu1_B0-G91aaN_ewKBAWuV",
		},
	}

	for _, tt := range tests {
		got, err := address.FriendlyTONAddress(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Len(t, got, 48)
		assert.NotContains(t, got, "=")
	}

	invalid := []string{
		"",
		"4e5c86a6893d38a7893f182f380e24e75a6fd7c42a7e601d2f2f76ca35d6c6ff",
		"-1:4e5c86a6893d38a7893f182f380e24e75a6fd7c42a7e601d2f2f76ca35d6c6ff",
		"0:zz",
		"0:4e5c86a6",
	}

	for _, raw := range invalid {
		_, err := address.FriendlyTONAddress(raw)
		assert.Error(t, err, raw)
	}
}

// TestBitcoinAddressBech32Layer pins the bech32 encoding layer itself: the
// BIP173 reference vector and the decode round trip of a derived address
// back to the hash160 of its compressed public key.
func TestBitcoinAddressBech32Layer(t *testing.T) {
	program, err := hex.DecodeString("751e76e8199196d454941c45d1b3a323f1433bd6")
	require.NoError(t, err)

	converted, err := bech32.ConvertBits(program, 8, 5, true)
	require.NoError(t, err)

	encoded, err := bech32.Encode("bc", append([]byte{0}, converted...))
	require.NoError(t, err)
	assert.Equal(t, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", encoded)

	hrp, data, err := bech32.Decode("bc1qenqxln48rmf3rj2yz33cn3gh0pf5czh4nk86ul")
	require.NoError(t, err)
	assert.Equal(t, "bc", hrp)
	require.NotEmpty(t, data)
	assert.Equal(t, byte(0), data[0])

	decoded, err := bech32.ConvertBits(data[1:], 5, 8, false)
	require.NoError(t, err)

	publicKey, err := hex.DecodeString("021f2f0092256f7aa8c89226ae8ea3b0285d820afa7898739ba889df61188680a2")
	require.NoError(t, err)
	assert.Equal(t, btcutil.Hash160(publicKey), decoded)
}
