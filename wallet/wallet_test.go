package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiantorg/libradiant-go/base58"
	"github.com/radiantorg/libradiant-go/curve"
	"github.com/radiantorg/libradiant-go/hdkey"
	"github.com/radiantorg/libradiant-go/mnemonic"
)

const testVectorMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestNew_ProducesValidWallet(t *testing.T) {
	w, err := New(&MainNet)
	require.NoError(t, err)

	assert.Len(t, w.PrivateKeyBytes(), curve.PrivateKeyLen)
	assert.Len(t, w.PublicKey(), curve.CompressedPubKeyLen)
	assert.Contains(t, []byte{0x02, 0x03}, w.PublicKey()[0])

	version, payload, err := base58.CheckDecode(w.Address)
	require.NoError(t, err)
	assert.Equal(t, base58.MainnetP2PKH, version)
	assert.Len(t, payload, 20)
}

func TestNew_DefaultsToMainnet(t *testing.T) {
	w, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", w.Network.Name)
}

func TestWIF_RoundTrip(t *testing.T) {
	for _, network := range []*NetworkConfig{&MainNet, &TestNet} {
		w, err := New(network)
		require.NoError(t, err)

		restored, err := FromWIF(w.WIF())
		require.NoError(t, err, "network %s", network.Name)

		assert.Equal(t, w.Address, restored.Address)
		assert.Equal(t, w.PrivateKeyBytes(), restored.PrivateKeyBytes())
		assert.Equal(t, network.Name, restored.Network.Name)
	}
}

func TestFromWIF_RejectsCorruptedString(t *testing.T) {
	w, err := New(&MainNet)
	require.NoError(t, err)

	wif := []byte(w.WIF())
	for i := len(wif) - 1; i > 0; i-- {
		if wif[i] != wif[0] {
			wif[0], wif[i] = wif[i], wif[0]
			break
		}
	}
	_, err = FromWIF(string(wif))
	assert.Error(t, err)
}

func TestFromHex(t *testing.T) {
	w, err := New(&TestNet)
	require.NoError(t, err)

	restored, err := FromHex(hex.EncodeToString(w.PrivateKeyBytes()), &TestNet)
	require.NoError(t, err)
	assert.Equal(t, w.Address, restored.Address)

	_, err = FromHex("zz", &TestNet)
	assert.ErrorIs(t, err, curve.ErrInvalidKey)

	_, err = FromHex(strings.Repeat("00", 32), &TestNet)
	assert.ErrorIs(t, err, curve.ErrInvalidKey)

	_, err = FromHex(strings.Repeat("ff", 32), &TestNet)
	assert.ErrorIs(t, err, curve.ErrInvalidKey)
}

func TestFromMnemonic_Deterministic(t *testing.T) {
	a, err := FromMnemonic(testVectorMnemonic, "", "", &MainNet)
	require.NoError(t, err)
	b, err := FromMnemonic(testVectorMnemonic, "", DefaultDerivationPath, &MainNet)
	require.NoError(t, err)
	assert.Equal(t, a.Address, b.Address)

	// Matches direct derivation through the hdkey package.
	seed := mnemonic.Seed(testVectorMnemonic, "")
	key, err := hdkey.DerivePath(seed, DefaultDerivationPath)
	require.NoError(t, err)
	assert.Equal(t, key.PrivateKeyBytes(), a.PrivateKeyBytes())

	// Different path or passphrase yields a different identity.
	c, err := FromMnemonic(testVectorMnemonic, "", "m/44'/0'/0'/0/1", &MainNet)
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, c.Address)

	d, err := FromMnemonic(testVectorMnemonic, "hunter2", "", &MainNet)
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, d.Address)
}

func TestFromMnemonic_Invalid(t *testing.T) {
	_, err := FromMnemonic("not a mnemonic", "", "", &MainNet)
	assert.ErrorIs(t, err, mnemonic.ErrInvalidMnemonic)

	_, err = FromMnemonic(testVectorMnemonic, "", "bogus/path", &MainNet)
	assert.ErrorIs(t, err, hdkey.ErrInvalidDerivationPath)
}

func TestScriptHash(t *testing.T) {
	w, err := New(&MainNet)
	require.NoError(t, err)

	sh := w.ScriptHash()
	assert.Len(t, sh, 64)
	_, err = hex.DecodeString(sh)
	require.NoError(t, err)

	// The locking script commits to the wallet's pubkey hash.
	script := w.LockingScript()
	require.Len(t, script, 25)
	assert.Equal(t, Hash160(w.PublicKey()), script[3:23])
}

func TestGetNetwork(t *testing.T) {
	net, err := GetNetwork("testnet")
	require.NoError(t, err)
	assert.Equal(t, base58.TestnetP2PKH, net.P2PKHVersion)

	_, err = GetNetwork("signet")
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}
