package network

import "context"

// MockIndexerService is a test double for IndexerService.
// All function fields must be set before the corresponding method is called.
type MockIndexerService struct {
	ListUnspentFn        func(ctx context.Context, scripthash string) ([]*UTXO, error)
	BroadcastFn          func(ctx context.Context, rawTxHex string) (string, error)
	GetBalanceFn         func(ctx context.Context, scripthash string) (*Balance, error)
	EstimateFeePerByteFn func(ctx context.Context, blocks int) (uint64, error)
}

func (m *MockIndexerService) ListUnspent(ctx context.Context, scripthash string) ([]*UTXO, error) {
	return m.ListUnspentFn(ctx, scripthash)
}
func (m *MockIndexerService) Broadcast(ctx context.Context, rawTxHex string) (string, error) {
	return m.BroadcastFn(ctx, rawTxHex)
}
func (m *MockIndexerService) GetBalance(ctx context.Context, scripthash string) (*Balance, error) {
	return m.GetBalanceFn(ctx, scripthash)
}
func (m *MockIndexerService) EstimateFeePerByte(ctx context.Context, blocks int) (uint64, error) {
	return m.EstimateFeePerByteFn(ctx, blocks)
}
