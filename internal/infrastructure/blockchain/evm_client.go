package blockchain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	dialEVMClient    = ethclient.Dial
	getClientChainID = func(client *ethclient.Client, ctx context.Context) (*big.Int, error) {
		return client.ChainID(ctx)
	}
)

// DefaultReceiptTimeout bounds a single receipt lookup
const DefaultReceiptTimeout = 15 * time.Second

// EVMClient provides read access to an EVM chain. It performs a single
// network round trip per call and never retries.
type EVMClient struct {
	client         *ethclient.Client
	chainID        *big.Int
	rpcURL         string
	receiptTimeout time.Duration
	// testReceipt allows deterministic unit tests without network sockets.
	testReceipt func(ctx context.Context, txHash string) (*types.Receipt, error)
}

// NewEVMClient creates a new EVM client
func NewEVMClient(rpcURL string, receiptTimeout time.Duration) (*EVMClient, error) {
	client, err := dialEVMClient(rpcURL)
	if err != nil {
		return nil, err
	}

	chainID, err := getClientChainID(client, context.Background())
	if err != nil {
		return nil, err
	}

	if receiptTimeout <= 0 {
		receiptTimeout = DefaultReceiptTimeout
	}

	return &EVMClient{
		client:         client,
		chainID:        chainID,
		rpcURL:         rpcURL,
		receiptTimeout: receiptTimeout,
	}, nil
}

// NewEVMClientWithReceiptFn creates an EVM client that uses an injected
// receipt lookup. This is intended for unit tests where RPC sockets are
// unavailable.
func NewEVMClientWithReceiptFn(chainID *big.Int, receiptFn func(ctx context.Context, txHash string) (*types.Receipt, error)) *EVMClient {
	if chainID == nil {
		chainID = big.NewInt(1)
	}
	return &EVMClient{
		chainID:        chainID,
		receiptTimeout: DefaultReceiptTimeout,
		testReceipt:    receiptFn,
	}
}

// ChainID returns the chain ID
func (c *EVMClient) ChainID() *big.Int {
	return c.chainID
}

// GetTransactionReceipt gets a transaction receipt, bounded by the
// configured timeout so a slow node surfaces as an error, not a hang
func (c *EVMClient) GetTransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	if c.testReceipt != nil {
		return c.testReceipt(ctx, txHash)
	}
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()
	hash := common.HexToHash(txHash)
	return c.client.TransactionReceipt(ctx, hash)
}

// GetBlockNumber gets the latest block number
func (c *EVMClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

// Close closes the client connection
func (c *EVMClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
