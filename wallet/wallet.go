// Package wallet ties a Radiant private key to its public key, address and
// WIF encoding, with construction from random entropy, hex, WIF, or a BIP39
// mnemonic plus BIP32 derivation path.
//
// A Wallet never persists, logs or caches its key material; the private key
// lives only in the struct the caller holds.
package wallet

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ripemd160"

	"github.com/radiantorg/libradiant-go/base58"
	"github.com/radiantorg/libradiant-go/curve"
	"github.com/radiantorg/libradiant-go/hdkey"
	"github.com/radiantorg/libradiant-go/mnemonic"
)

// DefaultDerivationPath is the BIP44 path used for Radiant wallets.
const DefaultDerivationPath = "m/44'/0'/0'/0/0"

// Wallet is a single-key Radiant identity.
type Wallet struct {
	priv    []byte
	pub     []byte
	Address string
	Network *NetworkConfig
}

// New creates a wallet from a fresh random scalar, redrawing until the
// scalar falls inside [1, N).
func New(network *NetworkConfig) (*Wallet, error) {
	if network == nil {
		network = &MainNet
	}

	priv := make([]byte, curve.PrivateKeyLen)
	for {
		if _, err := rand.Read(priv); err != nil {
			return nil, fmt.Errorf("wallet: entropy generation failed: %w", err)
		}
		if curve.ValidateScalar(priv) == nil {
			break
		}
	}

	return fromPrivateKey(priv, network)
}

// FromHex constructs a wallet from a 64-character hex private key.
func FromHex(hexKey string, network *NetworkConfig) (*Wallet, error) {
	if network == nil {
		network = &MainNet
	}

	priv, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex: %w", curve.ErrInvalidKey, err)
	}
	return fromPrivateKey(priv, network)
}

// FromWIF constructs a wallet from a WIF string. The network is recovered
// from the WIF version byte, and a trailing 0x01 compression flag is
// stripped.
func FromWIF(wif string) (*Wallet, error) {
	version, payload, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, err
	}

	network, err := networkForWIFVersion(version)
	if err != nil {
		return nil, err
	}

	if len(payload) == curve.PrivateKeyLen+1 && payload[len(payload)-1] == 0x01 {
		payload = payload[:curve.PrivateKeyLen]
	}
	return fromPrivateKey(payload, network)
}

// FromMnemonic constructs a wallet by validating the BIP39 mnemonic,
// deriving its seed with the passphrase, and walking the BIP32 path.
// An empty path uses DefaultDerivationPath.
func FromMnemonic(phrase, passphrase, path string, network *NetworkConfig) (*Wallet, error) {
	if network == nil {
		network = &MainNet
	}
	if path == "" {
		path = DefaultDerivationPath
	}

	if !mnemonic.Validate(phrase) {
		return nil, mnemonic.ErrInvalidMnemonic
	}

	seed := mnemonic.Seed(phrase, passphrase)
	key, err := hdkey.DerivePath(seed, path)
	if err != nil {
		return nil, err
	}
	return fromPrivateKey(key.PrivateKeyBytes(), network)
}

// fromPrivateKey validates the scalar and computes the derived fields.
func fromPrivateKey(priv []byte, network *NetworkConfig) (*Wallet, error) {
	if err := curve.ValidateScalar(priv); err != nil {
		return nil, err
	}

	pub, err := curve.DerivePublicKey(priv)
	if err != nil {
		return nil, err
	}

	key := make([]byte, curve.PrivateKeyLen)
	copy(key, priv)

	return &Wallet{
		priv:    key,
		pub:     pub,
		Address: AddressFromPublicKey(pub, network.P2PKHVersion),
		Network: network,
	}, nil
}

// WIF exports the private key as a compressed-key WIF string.
func (w *Wallet) WIF() string {
	payload := make([]byte, 0, curve.PrivateKeyLen+1)
	payload = append(payload, w.priv...)
	payload = append(payload, 0x01) // compressed public key flag
	return base58.CheckEncode(w.Network.WIFVersion, payload)
}

// PublicKeyHex returns the compressed public key as hex.
func (w *Wallet) PublicKeyHex() string {
	return hex.EncodeToString(w.pub)
}

// PublicKey returns a copy of the 33-byte compressed public key.
func (w *Wallet) PublicKey() []byte {
	out := make([]byte, len(w.pub))
	copy(out, w.pub)
	return out
}

// PrivateKeyBytes returns a copy of the 32-byte private key for handoff to
// the signing collaborator.
func (w *Wallet) PrivateKeyBytes() []byte {
	out := make([]byte, len(w.priv))
	copy(out, w.priv)
	return out
}

// LockingScript returns the P2PKH locking script paying to this wallet.
func (w *Wallet) LockingScript() []byte {
	return P2PKHScript(Hash160(w.pub))
}

// ScriptHash returns the ElectrumX index key for this wallet's P2PKH
// script: SHA256 of the locking script, byte-reversed, hex-encoded.
func (w *Wallet) ScriptHash() string {
	sum := sha256.Sum256(w.LockingScript())
	for i, j := 0, len(sum)-1; i < j; i, j = i+1, j-1 {
		sum[i], sum[j] = sum[j], sum[i]
	}
	return hex.EncodeToString(sum[:])
}

// AddressFromPublicKey encodes HASH160 of the public key under the given
// version byte.
func AddressFromPublicKey(pub []byte, version byte) string {
	return base58.CheckEncode(version, Hash160(pub))
}

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// P2PKHScript builds the canonical pay-to-pubkey-hash locking script:
// OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG.
func P2PKHScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, 0x76, 0xa9, 0x14) // OP_DUP OP_HASH160 PUSH20
	script = append(script, pubKeyHash...)
	script = append(script, 0x88, 0xac) // OP_EQUALVERIFY OP_CHECKSIG
	return script
}
