package tx

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiantorg/libradiant-go/wallet"
)

func testWallets(t *testing.T) (payer, payee *wallet.Wallet) {
	t.Helper()
	var err error
	payer, err = wallet.New(&wallet.MainNet)
	require.NoError(t, err)
	payee, err = wallet.New(&wallet.MainNet)
	require.NoError(t, err)
	return payer, payee
}

func fundedSelection(w *wallet.Wallet, values ...uint64) *Selection {
	sel := &Selection{}
	for i, v := range values {
		u := makeUTXO(byte(i+1), v)
		u.ScriptPubKey = w.LockingScript()
		sel.Selected = append(sel.Selected, u)
		sel.TotalIn += v
	}
	return sel
}

func TestNewSkeleton_ChangeOutput(t *testing.T) {
	payer, payee := testWallets(t)
	sel := fundedSelection(payer, 100_000)

	skeleton, err := NewSkeleton(sel, []Output{{Address: payee.Address, Value: 40_000}}, payer.Address, 1)
	require.NoError(t, err)

	// Input order preserved, change appended last.
	require.Len(t, skeleton.Inputs, 1)
	require.Len(t, skeleton.Outputs, 2)
	assert.Equal(t, payee.Address, skeleton.Outputs[0].Address)
	assert.Equal(t, payer.Address, skeleton.Outputs[1].Address)

	fee := EstimateFee(1, 2, nil, 1)
	assert.Equal(t, fee, skeleton.Fee)
	assert.Equal(t, uint64(100_000)-40_000-fee, skeleton.Outputs[1].Value)
	assert.Equal(t, skeleton.TotalIn(), skeleton.TotalOut()+skeleton.Fee)
}

func TestNewSkeleton_DustChangeFoldedIntoFee(t *testing.T) {
	payer, payee := testWallets(t)

	fee := EstimateFee(1, 2, nil, 1)
	// Leave exactly 100 photons of would-be change, below the dust limit.
	sel := fundedSelection(payer, 40_000+fee+100)

	skeleton, err := NewSkeleton(sel, []Output{{Address: payee.Address, Value: 40_000}}, payer.Address, 1)
	require.NoError(t, err)

	require.Len(t, skeleton.Outputs, 1)
	assert.Equal(t, fee+100, skeleton.Fee)
}

func TestNewSkeleton_FeeRatePropagates(t *testing.T) {
	payer, payee := testWallets(t)
	sel := fundedSelection(payer, 1_000_000)

	atOne, err := NewSkeleton(sel, []Output{{Address: payee.Address, Value: 1000}}, payer.Address, 1)
	require.NoError(t, err)
	atFive, err := NewSkeleton(sel, []Output{{Address: payee.Address, Value: 1000}}, payer.Address, 5)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), atOne.FeePerByte)
	assert.Equal(t, uint64(5), atFive.FeePerByte)
	assert.Equal(t, 5*atOne.Fee, atFive.Fee)
}

func TestNewSkeleton_RawScriptOutputs(t *testing.T) {
	payer, _ := testWallets(t)
	sel := fundedSelection(payer, 100_000)

	carrier, err := DataCarrierScript([]byte("gly"), bytes.Repeat([]byte{0xaa}, 32))
	require.NoError(t, err)

	skeleton, err := NewSkeleton(sel, []Output{{Script: carrier, Value: 0}}, payer.Address, 1)
	require.NoError(t, err)

	require.Len(t, skeleton.Outputs, 2)
	assert.Equal(t, carrier, skeleton.Outputs[0].Script)
	assert.Equal(t, EstimateFee(1, 1, []int{len(carrier)}, 1), skeleton.Fee)
}

func TestNewSkeleton_Errors(t *testing.T) {
	payer, payee := testWallets(t)

	_, err := NewSkeleton(&Selection{}, nil, payer.Address, 1)
	assert.ErrorIs(t, err, ErrNoUTXOs)

	sel := fundedSelection(payer, 100_000)
	_, err = NewSkeleton(sel, []Output{{Value: 5}}, payer.Address, 1)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = NewSkeleton(sel, []Output{{Address: payee.Address, Script: []byte{0x6a}, Value: 5}}, payer.Address, 1)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	_, err = NewSkeleton(sel, []Output{{Address: payee.Address, Value: 200_000}}, payer.Address, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = NewSkeleton(sel, []Output{{Address: payee.Address, Value: 40_000}}, "", 1)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestAddressToScript(t *testing.T) {
	payer, _ := testWallets(t)

	script, err := AddressToScript(payer.Address)
	require.NoError(t, err)
	assert.Equal(t, payer.LockingScript(), script)

	_, err = AddressToScript("not-an-address!")
	assert.Error(t, err)
}

func TestDataCarrierScript_ChunksOversizedPushes(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, MaxPushSize*2+10)
	script, err := DataCarrierScript(payload)
	require.NoError(t, err)

	// OP_FALSE OP_RETURN prefix.
	assert.Equal(t, byte(0x00), script[0])
	assert.Equal(t, byte(0x6a), script[1])

	// The full payload survives, in order, across chunk boundaries.
	assert.True(t, bytes.Contains(script, bytes.Repeat([]byte{0x42}, MaxPushSize)))
}

func TestSDKSigner_SignsSkeleton(t *testing.T) {
	payer, payee := testWallets(t)
	sel := fundedSelection(payer, 100_000)

	skeleton, err := NewSkeleton(sel, []Output{{Address: payee.Address, Value: 40_000}}, payer.Address, 1)
	require.NoError(t, err)

	signer := &SDKSigner{}
	signed, err := signer.Sign(context.Background(), skeleton, payer.PrivateKeyBytes())
	require.NoError(t, err)

	assert.Len(t, signed.TxID, 64)
	_, err = hex.DecodeString(signed.TxID)
	require.NoError(t, err)
	assert.NotEmpty(t, signed.RawTxHex)
	assert.Equal(t, 1, signed.InputCount)
	assert.Equal(t, 2, signed.OutputCount)
	assert.Equal(t, skeleton.Fee, signed.Fee)
}

func TestSDKSigner_EmptySkeleton(t *testing.T) {
	signer := &SDKSigner{}
	_, err := signer.Sign(context.Background(), &Skeleton{}, nil)
	assert.ErrorIs(t, err, ErrSigningFailed)
}

func TestValidateTxID(t *testing.T) {
	require.NoError(t, ValidateTxID(makeUTXO(0xab, 1).TxID))
	assert.ErrorIs(t, ValidateTxID("abc"), ErrInvalidTxID)
	assert.ErrorIs(t, ValidateTxID(string(bytes.Repeat([]byte{'z'}, 64))), ErrInvalidTxID)
}
