package tx

import (
	"fmt"

	"github.com/bsv-blockchain/go-sdk/script"

	"github.com/radiantorg/libradiant-go/base58"
	"github.com/radiantorg/libradiant-go/wallet"
)

// MaxPushSize is the largest single data push used in a data-carrier
// output; longer payloads are split across multiple pushes.
const MaxPushSize = 520

// AddressToScript converts a Base58Check address into its P2PKH locking
// script, verifying the checksum and version byte.
func AddressToScript(address string) ([]byte, error) {
	version, payload, err := base58.CheckDecode(address)
	if err != nil {
		return nil, err
	}
	if version != base58.MainnetP2PKH && version != base58.TestnetP2PKH {
		return nil, fmt.Errorf("%w: 0x%02x", wallet.ErrUnsupportedAddressVersion, version)
	}
	if len(payload) != 20 {
		return nil, fmt.Errorf("%w: pubkey hash is %d bytes", ErrScriptBuild, len(payload))
	}
	return wallet.P2PKHScript(payload), nil
}

// DataCarrierScript builds an unspendable OP_FALSE OP_RETURN script holding
// the given data pushes. Pushes longer than MaxPushSize are chunked.
func DataCarrierScript(pushes ...[]byte) ([]byte, error) {
	s := &script.Script{}
	*s = append(*s, script.Op0, script.OpRETURN)
	for _, push := range pushes {
		for _, chunk := range splitPush(push) {
			if err := s.AppendPushData(chunk); err != nil {
				return nil, fmt.Errorf("%w: push data: %w", ErrScriptBuild, err)
			}
		}
	}
	return []byte(*s), nil
}

// splitPush splits data into MaxPushSize chunks; the last chunk may be
// shorter.
func splitPush(data []byte) [][]byte {
	if len(data) <= MaxPushSize {
		return [][]byte{data}
	}
	var chunks [][]byte
	for i := 0; i < len(data); i += MaxPushSize {
		end := min(i+MaxPushSize, len(data))
		chunks = append(chunks, data[i:end])
	}
	return chunks
}
