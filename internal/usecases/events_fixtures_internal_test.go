package usecases

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var (
	testContract  = common.HexToAddress("0x00000000000000000000000000000000000CAFE0")
	testPayer     = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testToken     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testClaimer   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	testRecipient = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func newTestDecoder(t *testing.T) *EventDecoder {
	t.Helper()
	d, err := NewEventDecoder()
	require.NoError(t, err)
	return d
}

func claimIDTopic(id uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(id))
}

func claimCreatedLog(t *testing.T, d *EventDecoder, emitter common.Address, id uint64, payer, token common.Address, amount, expiry *big.Int, recipient common.Address, secretHash [32]byte) *types.Log {
	t.Helper()
	ev := d.abi.Events[EventClaimCreated]
	data, err := ev.Inputs.NonIndexed().Pack(payer, token, amount, expiry, recipient, secretHash)
	require.NoError(t, err)
	return &types.Log{
		Address: emitter,
		Topics:  []common.Hash{ev.ID, claimIDTopic(id)},
		Data:    data,
	}
}

func claimedLog(t *testing.T, d *EventDecoder, emitter common.Address, id uint64, claimer common.Address, amount *big.Int) *types.Log {
	t.Helper()
	ev := d.abi.Events[EventClaimed]
	data, err := ev.Inputs.NonIndexed().Pack(claimer, amount)
	require.NoError(t, err)
	return &types.Log{
		Address: emitter,
		Topics:  []common.Hash{ev.ID, claimIDTopic(id)},
		Data:    data,
	}
}

func reclaimedLog(t *testing.T, d *EventDecoder, emitter common.Address, id uint64, payer common.Address, amount *big.Int) *types.Log {
	t.Helper()
	ev := d.abi.Events[EventReclaimed]
	data, err := ev.Inputs.NonIndexed().Pack(payer, amount)
	require.NoError(t, err)
	return &types.Log{
		Address: emitter,
		Topics:  []common.Hash{ev.ID, claimIDTopic(id)},
		Data:    data,
	}
}

// erc20TransferLog imitates the token transfer log that accompanies most
// paylink transactions in the same receipt
func erc20TransferLog(emitter common.Address) *types.Log {
	transferSig := common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")
	return &types.Log{
		Address: emitter,
		Topics: []common.Hash{
			transferSig,
			common.BytesToHash(testPayer.Bytes()),
			common.BytesToHash(testClaimer.Bytes()),
		},
		Data: common.BigToHash(big.NewInt(1000)).Bytes(),
	}
}

func successReceipt(logs ...*types.Log) *types.Receipt {
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs:   logs,
	}
}
