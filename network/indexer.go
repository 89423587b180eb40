package network

import (
	"context"
	"fmt"
)

// IndexerService is the indexer collaborator contract consumed by the
// minting protocol and any higher-level orchestration.
type IndexerService interface {
	// ListUnspent returns all unspent outputs indexed under the scripthash.
	ListUnspent(ctx context.Context, scripthash string) ([]*UTXO, error)

	// Broadcast submits a raw transaction hex and returns the txid.
	Broadcast(ctx context.Context, rawTxHex string) (string, error)

	// GetBalance returns the confirmed and unconfirmed balance for the
	// scripthash, in photons.
	GetBalance(ctx context.Context, scripthash string) (*Balance, error)

	// EstimateFeePerByte asks the indexer for a fee rate targeting
	// confirmation within the given number of blocks.
	EstimateFeePerByte(ctx context.Context, blocks int) (uint64, error)
}

// UTXO is an unspent output as reported by the ElectrumX listunspent call.
type UTXO struct {
	TxHash string `json:"tx_hash"`
	TxPos  uint32 `json:"tx_pos"`
	Value  uint64 `json:"value"`
	Height uint64 `json:"height"`
}

// Balance mirrors the ElectrumX get_balance response.
type Balance struct {
	Confirmed   uint64 `json:"confirmed"`
	Unconfirmed int64  `json:"unconfirmed"`
}

// Compile-time interface check.
var _ IndexerService = (*RPCClient)(nil)

// ListUnspent calls blockchain.scripthash.listunspent.
func (c *RPCClient) ListUnspent(ctx context.Context, scripthash string) ([]*UTXO, error) {
	var results []*UTXO
	if err := c.Call(ctx, "blockchain.scripthash.listunspent", []interface{}{scripthash}, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Broadcast calls blockchain.transaction.broadcast. Indexer rejections are
// wrapped with ErrBroadcastRejected, preserving the server's message.
func (c *RPCClient) Broadcast(ctx context.Context, rawTxHex string) (string, error) {
	var txid string
	if err := c.Call(ctx, "blockchain.transaction.broadcast", []interface{}{rawTxHex}, &txid); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBroadcastRejected, err)
	}
	return txid, nil
}

// GetBalance calls blockchain.scripthash.get_balance.
func (c *RPCClient) GetBalance(ctx context.Context, scripthash string) (*Balance, error) {
	var result Balance
	if err := c.Call(ctx, "blockchain.scripthash.get_balance", []interface{}{scripthash}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EstimateFeePerByte calls blockchain.estimatefee, which returns a
// coins-per-kilobyte float, and converts it to whole photons per byte
// (minimum 1). A negative response means the indexer has no estimate; the
// default rate of 1 photon/byte is returned.
func (c *RPCClient) EstimateFeePerByte(ctx context.Context, blocks int) (uint64, error) {
	var coinsPerKB float64
	if err := c.Call(ctx, "blockchain.estimatefee", []interface{}{blocks}, &coinsPerKB); err != nil {
		return 0, err
	}
	if coinsPerKB <= 0 {
		return 1, nil
	}
	perByte := uint64(coinsPerKB * 1e8 / 1000)
	if perByte == 0 {
		perByte = 1
	}
	return perByte, nil
}
