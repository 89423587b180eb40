package glyph

import (
	"context"

	"github.com/radiantorg/libradiant-go/tx"
)

// BurnResult reports a completed token burn.
type BurnResult struct {
	TxID        string
	BurnedValue uint64 // photons carried into the unspendable burn output
	Fee         uint64
}

// BurnToken destroys a token by spending its UTXO into an unspendable
// data-carrier output holding the Glyph burn marker. The fee comes out of
// the token value when it covers it; otherwise plain wallet UTXOs are
// pulled in to pay it and the full token value is burned.
func (m *Minter) BurnToken(ctx context.Context, tokenRef string) (*BurnResult, error) {
	token, err := m.findTokenUTXO(ctx, tokenRef)
	if err != nil {
		return nil, err
	}

	burnScript, err := tx.DataCarrierScript(buildBurnPayload())
	if err != nil {
		return nil, err
	}
	carrierSizes := []int{len(burnScript)}

	burnedValue := token.Value
	fee := tx.EstimateFee(1, 1, carrierSizes, m.feePerByte)
	if token.Value > fee {
		// The token funds its own burn; whatever survives the fee is
		// carried into the unspendable output.
		burnedValue = token.Value - fee
	}

	outputs := []tx.Output{{Script: burnScript, Value: burnedValue}}
	signed, err := m.buildAndSign(ctx, burnedValue, outputs, carrierSizes, 0, token)
	if err != nil {
		return nil, err
	}

	txid, err := m.indexer.Broadcast(ctx, signed.RawTxHex)
	if err != nil {
		return nil, err
	}
	return &BurnResult{
		TxID:        txid,
		BurnedValue: burnedValue,
		Fee:         signed.Fee,
	}, nil
}
