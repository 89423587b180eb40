package glyph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRef_Roundtrip(t *testing.T) {
	txid := strings.Repeat("ab", 32)
	ref := FormatTokenRef(txid, 3)
	assert.Equal(t, txid+"_3", ref)

	gotTxid, gotVout, err := ParseTokenRef(ref)
	require.NoError(t, err)
	assert.Equal(t, txid, gotTxid)
	assert.Equal(t, uint32(3), gotVout)
}

func TestParseTokenRef_Invalid(t *testing.T) {
	txid := strings.Repeat("ab", 32)
	cases := []string{
		"",
		"no-separator",
		txid,                               // missing vout
		txid + "_",                         // empty vout
		txid + "_x",                        // non-numeric vout
		txid + "_-1",                       // negative vout
		txid + "_4294967296",               // vout overflows uint32
		strings.Repeat("ab", 16) + "_0",    // short txid
		strings.Repeat("zz", 32) + "_0",    // non-hex txid
		txid + "_0_1",                      // trailing extra field
	}
	for _, ref := range cases {
		_, _, err := ParseTokenRef(ref)
		assert.ErrorIs(t, err, ErrInvalidTokenRef, "ref %q", ref)
	}
}
