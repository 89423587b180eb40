// Package tx implements fee-aware coin selection and unsigned transaction
// assembly for Radiant. Signing is delegated to a Signer collaborator; this
// package performs no cryptography of its own.
package tx

// UTXO is an unspent transaction output as reported by the indexer, with the
// locking script attached by the caller. Values are in photons (the
// satoshi-equivalent Radiant unit).
type UTXO struct {
	TxID         string `json:"txid"` // 64 hex characters
	Vout         uint32 `json:"vout"`
	Value        uint64 `json:"value"`
	Height       uint64 `json:"height"`
	ScriptPubKey []byte `json:"script_pubkey,omitempty"`
}

// Selection is the result of one SelectCoins call. It is computed fresh per
// call and never cached.
type Selection struct {
	Selected []*UTXO
	TotalIn  uint64
}
