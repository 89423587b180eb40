package glyph

import (
	"context"

	"github.com/radiantorg/libradiant-go/tx"
)

// TransferResult reports a completed token transfer.
type TransferResult struct {
	TxID     string
	TokenRef string // reference to the recipient's new token UTXO
	Fee      uint64
}

// TransferToken sends amount photons of a token to a recipient address. The
// recipient receives output 0, so the new token reference is "<txid>_0".
// When the token UTXO alone covers the amount, the fee, and a dust-sized
// change, it is spent alone; otherwise plain wallet UTXOs are pulled in to
// cover the shortfall. Surplus returns to the wallet as change.
func (m *Minter) TransferToken(ctx context.Context, tokenRef, recipient string, amount uint64) (*TransferResult, error) {
	token, err := m.findTokenUTXO(ctx, tokenRef)
	if err != nil {
		return nil, err
	}

	outputs := []tx.Output{{Address: recipient, Value: amount}}
	signed, err := m.buildAndSign(ctx, amount, outputs, nil, 1, token)
	if err != nil {
		return nil, err
	}

	txid, err := m.indexer.Broadcast(ctx, signed.RawTxHex)
	if err != nil {
		return nil, err
	}
	return &TransferResult{
		TxID:     txid,
		TokenRef: FormatTokenRef(txid, 0),
		Fee:      signed.Fee,
	}, nil
}
