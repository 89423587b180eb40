package glyph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/radiantorg/libradiant-go/tx"
)

// FormatTokenRef builds the canonical reference for a token UTXO:
// the reveal txid and the output index joined by an underscore.
func FormatTokenRef(txid string, vout uint32) string {
	return fmt.Sprintf("%s_%d", txid, vout)
}

// ParseTokenRef splits a token reference into its txid and output index.
func ParseTokenRef(ref string) (txid string, vout uint32, err error) {
	idx := strings.LastIndexByte(ref, '_')
	if idx < 0 {
		return "", 0, fmt.Errorf("%w: missing separator in %q", ErrInvalidTokenRef, ref)
	}
	txid = ref[:idx]
	if err := tx.ValidateTxID(txid); err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidTokenRef, ref)
	}
	n, err := strconv.ParseUint(ref[idx+1:], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad output index in %q", ErrInvalidTokenRef, ref)
	}
	return txid, uint32(n), nil
}
