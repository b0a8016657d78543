package signer_test

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/multichain/go-walletcore/internal/wallet/keys"
	"github/multichain/go-walletcore/internal/wallet/signer"
)

const (
	// All-zero seed, m/44'/607'/0'/0'/0'/0'.
	tonPrivateKey = "e4eb84c208bf3f47d481a7097e8bd88b61d1422321a29ecea4b88d7dd3d366a4"
	tonPublicKey  = "45d816d76530710bb5f7124bf2814f951bc2c169a0c249a7d43ec1a40395fe69"

	tonRecipient = "0:178ffef7466b3cbb1f64e3e21bf4c9a2fb07eed7f074f86f7569a37f7b028101"
)

func TestSignTONTransaction(t *testing.T) {
	svc := newService(t)

	req := &signer.SignTONRequest{
		PrivateKey: tonPrivateKey,
		To:         tonRecipient,
		Value:      "1",
		Seqno:      7,
	}

	resp, err := svc.SignTONTransaction(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t,
		"FX+qgvvAaaIizBRLkulAY+2rTNnvrioVyiSQrHorgrbP9COGgI+u6nmtmVm/lqq/Q40wGBeyaTmslTh/hbMWDA==",
		resp.Signature)

	publicKey, err := hex.DecodeString(tonPublicKey)
	require.NoError(t, err)

	signature, err := base64.StdEncoding.DecodeString(resp.Signature)
	require.NoError(t, err)

	message := "ton:" + tonRecipient + ":1:7"
	assert.True(t, ed25519.Verify(ed25519.PublicKey(publicKey), []byte(message), signature))
}

func TestSignTONTransactionDeterminism(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	req := &signer.SignTONRequest{
		PrivateKey: tonPrivateKey,
		To:         tonRecipient,
		Value:      "250000000",
		Seqno:      1,
	}

	first, err := svc.SignTONTransaction(ctx, req)
	require.NoError(t, err)

	second, err := svc.SignTONTransaction(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.Signature, second.Signature)

	// A different seqno binds a different message.
	bumped := *req
	bumped.Seqno = 2

	fromBumped, err := svc.SignTONTransaction(ctx, &bumped)
	require.NoError(t, err)
	assert.NotEqual(t, first.Signature, fromBumped.Signature)
}

func TestSignTONTransactionValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	valid := signer.SignTONRequest{
		PrivateKey: tonPrivateKey,
		To:         tonRecipient,
		Value:      "1",
		Seqno:      0,
	}

	invalidAddresses := []string{
		"",
		"178ffef7466b3cbb1f64e3e21bf4c9a2fb07eed7f074f86f7569a37f7b028101",
		"-1:178ffef7466b3cbb1f64e3e21bf4c9a2fb07eed7f074f86f7569a37f7b028101",
		"0:178ffef7",
		"0:zz",
	}

	for _, to := range invalidAddresses {
		req := valid
		req.To = to

		_, err := svc.SignTONTransaction(ctx, &req)
		assert.ErrorIs(t, err, signer.ErrInvalidAddress, "to %q", to)
	}

	req := valid
	req.Value = ""
	_, err := svc.SignTONTransaction(ctx, &req)
	assert.ErrorIs(t, err, signer.ErrInvalidAmount)

	req = valid
	req.PrivateKey = "0x123"
	_, err = svc.SignTONTransaction(ctx, &req)
	assert.ErrorIs(t, err, keys.ErrInvalidKeyEncoding)
}
