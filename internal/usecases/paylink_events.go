package usecases

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/volatiletech/null/v8"
)

// Paylink contract event names
const (
	EventClaimCreated = "ClaimCreated"
	EventClaimed      = "Claimed"
	EventReclaimed    = "Reclaimed"
)

// paylinkABI describes the three lifecycle events emitted by the escrow
// contract. It is the only contract surface the backend reads.
const paylinkABI = `[
	{"type":"event","name":"ClaimCreated","inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"payer","type":"address","indexed":false},
		{"name":"token","type":"address","indexed":false},
		{"name":"amount","type":"uint256","indexed":false},
		{"name":"expiry","type":"uint256","indexed":false},
		{"name":"recipient","type":"address","indexed":false},
		{"name":"secretHash","type":"bytes32","indexed":false}]},
	{"type":"event","name":"Claimed","inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"claimer","type":"address","indexed":false},
		{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"Reclaimed","inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"payer","type":"address","indexed":false},
		{"name":"amount","type":"uint256","indexed":false}]}
]`

// CreateEvent is the decoded ClaimCreated payload. Zero-address recipient and
// zero secret hash are normalized to null (open claim, no secret required).
type CreateEvent struct {
	ID         uint64
	Payer      string
	Token      string
	Amount     string
	Expiry     int64
	Recipient  null.String
	SecretHash null.String
}

// ClaimEvent is the decoded Claimed payload
type ClaimEvent struct {
	ID      uint64
	Claimer string
	Amount  string
}

// ReclaimEvent is the decoded Reclaimed payload
type ReclaimEvent struct {
	ID     uint64
	Payer  string
	Amount string
}

// DecodedEvent is a tagged union over the three event shapes; exactly one
// variant is non-nil, matching Name.
type DecodedEvent struct {
	Name    string
	Create  *CreateEvent
	Claim   *ClaimEvent
	Reclaim *ReclaimEvent
}

// ClaimID returns the on-chain claim identifier of whichever variant is set
func (e *DecodedEvent) ClaimID() uint64 {
	switch e.Name {
	case EventClaimCreated:
		return e.Create.ID
	case EventClaimed:
		return e.Claim.ID
	case EventReclaimed:
		return e.Reclaim.ID
	}
	return 0
}

// EventDecoder decodes raw logs against the paylink event interface
type EventDecoder struct {
	abi abi.ABI
}

// NewEventDecoder parses the static paylink interface descriptor
func NewEventDecoder() (*EventDecoder, error) {
	parsed, err := abi.JSON(strings.NewReader(paylinkABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse paylink ABI: %w", err)
	}
	return &EventDecoder{abi: parsed}, nil
}

// Decode attempts to match a log against the known event signatures.
// A log from an unrelated event returns (nil, false, nil) - an expected,
// frequent case since transactions carry token transfer logs alongside the
// paylink event. A matching signature with corrupt data returns an error.
func (d *EventDecoder) Decode(lg types.Log) (*DecodedEvent, bool, error) {
	if len(lg.Topics) == 0 {
		return nil, false, nil
	}
	event, err := d.abi.EventByID(lg.Topics[0])
	if err != nil {
		// Unknown topic signature, not ours
		return nil, false, nil
	}

	if len(lg.Topics) != 2 {
		return nil, false, fmt.Errorf("event %s: expected 2 topics, got %d", event.Name, len(lg.Topics))
	}
	id := new(big.Int).SetBytes(lg.Topics[1].Bytes()).Uint64()

	values, err := event.Inputs.NonIndexed().Unpack(lg.Data)
	if err != nil {
		return nil, false, fmt.Errorf("event %s: %w", event.Name, err)
	}

	switch event.Name {
	case EventClaimCreated:
		ev, err := decodeCreateEvent(id, values)
		if err != nil {
			return nil, false, err
		}
		return &DecodedEvent{Name: event.Name, Create: ev}, true, nil
	case EventClaimed:
		ev, err := decodeClaimEvent(id, values)
		if err != nil {
			return nil, false, err
		}
		return &DecodedEvent{Name: event.Name, Claim: ev}, true, nil
	case EventReclaimed:
		ev, err := decodeReclaimEvent(id, values)
		if err != nil {
			return nil, false, err
		}
		return &DecodedEvent{Name: event.Name, Reclaim: ev}, true, nil
	}
	return nil, false, nil
}

func decodeCreateEvent(id uint64, values []interface{}) (*CreateEvent, error) {
	if len(values) != 6 {
		return nil, fmt.Errorf("ClaimCreated: expected 6 data fields, got %d", len(values))
	}
	payer, ok1 := values[0].(common.Address)
	token, ok2 := values[1].(common.Address)
	amount, ok3 := values[2].(*big.Int)
	expiry, ok4 := values[3].(*big.Int)
	recipient, ok5 := values[4].(common.Address)
	secretHash, ok6 := values[5].([32]byte)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return nil, fmt.Errorf("ClaimCreated: unexpected field types")
	}

	ev := &CreateEvent{
		ID:     id,
		Payer:  payer.Hex(),
		Token:  token.Hex(),
		Amount: amount.String(),
		Expiry: expiry.Int64(),
	}
	if recipient != (common.Address{}) {
		ev.Recipient = null.StringFrom(recipient.Hex())
	}
	if secretHash != ([32]byte{}) {
		ev.SecretHash = null.StringFrom(hexutil.Encode(secretHash[:]))
	}
	return ev, nil
}

func decodeClaimEvent(id uint64, values []interface{}) (*ClaimEvent, error) {
	if len(values) != 2 {
		return nil, fmt.Errorf("Claimed: expected 2 data fields, got %d", len(values))
	}
	claimer, ok1 := values[0].(common.Address)
	amount, ok2 := values[1].(*big.Int)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("Claimed: unexpected field types")
	}
	return &ClaimEvent{
		ID:      id,
		Claimer: claimer.Hex(),
		Amount:  amount.String(),
	}, nil
}

func decodeReclaimEvent(id uint64, values []interface{}) (*ReclaimEvent, error) {
	if len(values) != 2 {
		return nil, fmt.Errorf("Reclaimed: expected 2 data fields, got %d", len(values))
	}
	payer, ok1 := values[0].(common.Address)
	amount, ok2 := values[1].(*big.Int)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("Reclaimed: unexpected field types")
	}
	return &ReclaimEvent{
		ID:     id,
		Payer:  payer.Hex(),
		Amount: amount.String(),
	}, nil
}
