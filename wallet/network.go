package wallet

import (
	"fmt"

	"github.com/radiantorg/libradiant-go/base58"
)

// NetworkConfig defines address and WIF version bytes for a Radiant network.
type NetworkConfig struct {
	Name         string `json:"name"`
	P2PKHVersion byte   `json:"p2pkh_version"`
	P2SHVersion  byte   `json:"p2sh_version"`
	WIFVersion   byte   `json:"wif_version"`
	DefaultPort  uint16 `json:"default_port"`
	RPCPort      uint16 `json:"rpc_port"`
}

// Predefined network configurations. Radiant inherits Bitcoin's version
// bytes on both networks.
var (
	MainNet = NetworkConfig{
		Name:         "mainnet",
		P2PKHVersion: base58.MainnetP2PKH,
		P2SHVersion:  base58.MainnetP2SH,
		WIFVersion:   base58.MainnetWIF,
		DefaultPort:  7333,
		RPCPort:      7332,
	}

	TestNet = NetworkConfig{
		Name:         "testnet",
		P2PKHVersion: base58.TestnetP2PKH,
		P2SHVersion:  base58.TestnetP2SH,
		WIFVersion:   base58.TestnetWIF,
		DefaultPort:  17333,
		RPCPort:      17332,
	}

	RegTest = NetworkConfig{
		Name:         "regtest",
		P2PKHVersion: base58.TestnetP2PKH,
		P2SHVersion:  base58.TestnetP2SH,
		WIFVersion:   base58.TestnetWIF,
		DefaultPort:  18444,
		RPCPort:      18443,
	}
)

// predefined maps network names to their configs.
var predefined = map[string]*NetworkConfig{
	"mainnet": &MainNet,
	"testnet": &TestNet,
	"regtest": &RegTest,
}

// GetNetwork returns a predefined network by name.
func GetNetwork(name string) (*NetworkConfig, error) {
	if net, ok := predefined[name]; ok {
		return net, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, name)
}

// networkForWIFVersion maps a WIF version byte back to its network.
// Testnet and regtest share a version byte; testnet wins.
func networkForWIFVersion(version byte) (*NetworkConfig, error) {
	switch version {
	case base58.MainnetWIF:
		return &MainNet, nil
	case base58.TestnetWIF:
		return &TestNet, nil
	default:
		return nil, fmt.Errorf("%w: WIF version 0x%02x", ErrUnsupportedAddressVersion, version)
	}
}
