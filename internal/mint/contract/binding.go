package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

var (
	ErrEventNotFound = errors.New("event not found in receipt")
	ErrUnexpectedLog = errors.New("log is not of the expected event")
)

// Binding pairs a deployed address with the contract ABI.
type Binding struct {
	Address common.Address
	ABI     abi.ABI
}

func NewBinding(address common.Address, contractABI abi.ABI) *Binding {
	return &Binding{
		Address: address,
		ABI:     contractABI,
	}
}

// Minted is a decoded Minted event.
type Minted struct {
	Minter      common.Address
	Quantity    *big.Int
	TxHash      common.Hash
	LogIndex    uint
	BlockNumber uint64
	BlockHash   common.Hash
	Removed     bool
}

// MintedTopic returns the topic hash of the Minted event.
func (b *Binding) MintedTopic() common.Hash {
	return b.ABI.Events[EventMinted].ID
}

// MintedFilterQuery selects Minted logs of the contract in [from, to]. A nil to means latest.
func (b *Binding) MintedFilterQuery(from uint64, to *uint64) ethereum.FilterQuery {
	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		Addresses: []common.Address{b.Address},
		Topics:    [][]common.Hash{{b.MintedTopic()}},
	}
	if to != nil {
		q.ToBlock = new(big.Int).SetUint64(*to)
	}

	return q
}

// ParseMinted decodes a Minted log. The minter is the first address input and the quantity
// the first integer input, whether indexed or not, so ABIs with other parameter names work.
func (b *Binding) ParseMinted(l types.Log) (*Minted, error) {
	values, err := b.unpackLog(EventMinted, l)
	if err != nil {
		return nil, err
	}

	event := b.ABI.Events[EventMinted]
	out := &Minted{
		TxHash:      l.TxHash,
		LogIndex:    l.Index,
		BlockNumber: l.BlockNumber,
		BlockHash:   l.BlockHash,
		Removed:     l.Removed,
	}

	for _, input := range event.Inputs {
		switch v := values[input.Name].(type) {
		case common.Address:
			if out.Minter == (common.Address{}) {
				out.Minter = v
			}
		case *big.Int:
			if out.Quantity == nil {
				out.Quantity = v
			}
		}
	}

	if out.Quantity == nil {
		return nil, errors.New("Minted event has no integer input")
	}

	return out, nil
}

// ParseToggled finds eventName in the receipt logs of the contract and returns its bool argument.
func (b *Binding) ParseToggled(receipt *types.Receipt, eventName string) (bool, error) {
	for _, l := range receipt.Logs {
		if l.Address != b.Address {
			continue
		}

		values, err := b.unpackLog(eventName, *l)
		if errors.Is(err, ErrUnexpectedLog) {
			continue
		}
		if err != nil {
			return false, err
		}

		for _, v := range values {
			if flag, ok := v.(bool); ok {
				return flag, nil
			}
		}

		return false, errors.Errorf("%s event has no bool argument", eventName)
	}

	return false, errors.Wrap(ErrEventNotFound, eventName)
}

func (b *Binding) unpackLog(eventName string, l types.Log) (map[string]any, error) {
	event, ok := b.ABI.Events[eventName]
	if !ok {
		return nil, errors.Errorf("unknown event %s", eventName)
	}

	if len(l.Topics) == 0 || l.Topics[0] != event.ID {
		return nil, errors.Wrap(ErrUnexpectedLog, eventName)
	}

	values := map[string]any{}
	if len(l.Data) > 0 {
		if err := b.ABI.UnpackIntoMap(values, eventName, l.Data); err != nil {
			return nil, errors.Wrapf(err, "failed to unpack %s data", eventName)
		}
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	if err := abi.ParseTopicsIntoMap(values, indexed, l.Topics[1:]); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s topics", eventName)
	}

	return values, nil
}
