package network

import "fmt"

// IndexerConfig holds the connection parameters for a Radiant indexer's
// JSON-RPC interface.
type IndexerConfig struct {
	URL      string `json:"url"`
	User     string `json:"user"`
	Password string `json:"password"`
	Network  string `json:"network"`
}

// IndexerPresets contains default configurations for known networks.
// Mainnet is intentionally omitted to require explicit configuration.
var IndexerPresets = map[string]IndexerConfig{
	"regtest": {URL: "http://localhost:50001"},
	"testnet": {URL: "http://localhost:50001"},
}

// ResolveConfig merges indexer configuration from three sources with
// decreasing priority:
//  1. Caller-supplied flags (highest priority)
//  2. Environment variables (RADIANT_INDEXER_URL, RADIANT_INDEXER_USER,
//     RADIANT_INDEXER_PASS)
//  3. Network presets (lowest priority, regtest/testnet only)
//
// For mainnet, explicit configuration is required; there is no preset.
func ResolveConfig(flags *IndexerConfig, env map[string]string, network string) (*IndexerConfig, error) {
	result := IndexerConfig{Network: network}

	if preset, ok := IndexerPresets[network]; ok {
		result = preset
		result.Network = network
	}

	if env != nil {
		if v, ok := env["RADIANT_INDEXER_URL"]; ok && v != "" {
			result.URL = v
		}
		if v, ok := env["RADIANT_INDEXER_USER"]; ok && v != "" {
			result.User = v
		}
		if v, ok := env["RADIANT_INDEXER_PASS"]; ok && v != "" {
			result.Password = v
		}
	}

	if flags != nil {
		if flags.URL != "" {
			result.URL = flags.URL
		}
		if flags.User != "" {
			result.User = flags.User
		}
		if flags.Password != "" {
			result.Password = flags.Password
		}
	}

	if result.URL == "" {
		return nil, fmt.Errorf("network: %s requires explicit indexer configuration (set RADIANT_INDEXER_URL or pass flags)", network)
	}

	return &result, nil
}
