package usecases

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	domainerrors "paylink.backend/internal/domain/errors"
	"paylink.backend/pkg/logger"
)

// ReceiptOracle fetches transaction receipts from the chain. A nil error
// with a nil receipt is treated the same as a lookup failure.
type ReceiptOracle interface {
	GetTransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error)
}

// EventVerifier verifies that a transaction emitted the expected paylink event
type EventVerifier interface {
	Verify(ctx context.Context, txHash, eventName string, expectedClaimID *uint64) (*DecodedEvent, error)
}

// TxVerifier validates on-chain transactions against the paylink contract.
// The contract address and decoder are injected, read-only configuration.
type TxVerifier struct {
	oracle   ReceiptOracle
	decoder  *EventDecoder
	contract common.Address
}

// NewTxVerifier creates a new transaction verifier
func NewTxVerifier(oracle ReceiptOracle, decoder *EventDecoder, contractAddress string) *TxVerifier {
	return &TxVerifier{
		oracle:   oracle,
		decoder:  decoder,
		contract: common.HexToAddress(contractAddress),
	}
}

// Verify fetches the receipt for txHash and scans its logs for the named
// paylink event. Logs from other contracts are skipped (provenance filter),
// undecodable logs are skipped with a warning, and the first matching event
// wins. When expectedClaimID is supplied, a mismatch on the first matching
// event fails immediately: it is conclusive evidence of the wrong
// transaction, not a cue to keep scanning.
func (v *TxVerifier) Verify(ctx context.Context, txHash, eventName string, expectedClaimID *uint64) (*DecodedEvent, error) {
	receipt, err := v.oracle.GetTransactionReceipt(ctx, txHash)
	if err != nil || receipt == nil {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrTxNotFoundOrFailed, txHash)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", domainerrors.ErrTxNotFoundOrFailed, txHash)
	}

	for _, lg := range receipt.Logs {
		if lg == nil || lg.Address != v.contract {
			continue
		}

		event, ok, decodeErr := v.decoder.Decode(*lg)
		if decodeErr != nil {
			// Other logs in the same receipt may still carry the event
			logger.Warn(ctx, "log decode failed, skipping",
				zap.String("tx_hash", txHash),
				zap.Uint("log_index", lg.Index),
				zap.Error(decodeErr),
			)
			continue
		}
		if !ok || event.Name != eventName {
			continue
		}

		if expectedClaimID != nil && event.ClaimID() != *expectedClaimID {
			return nil, fmt.Errorf("%w: expected %d got %d", domainerrors.ErrClaimIDMismatch, *expectedClaimID, event.ClaimID())
		}
		return event, nil
	}

	return nil, fmt.Errorf("%w: %s event not found in tx %s", domainerrors.ErrEventNotFound, eventName, txHash)
}
