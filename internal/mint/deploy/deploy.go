package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/util"
)

var ErrEmptyBytecode = errors.New("empty bytecode")

// Result describes a mined deployment.
type Result struct {
	Address     common.Address
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

type Service struct {
	tr *chain.Transactor
}

func NewService(tr *chain.Transactor) *Service {
	return &Service{tr: tr}
}

// Deploy creates the contract from bytecode. Constructor args are ABI encoded with
// contractABI when given. There are no retries, a failure is returned as-is.
func (s *Service) Deploy(ctx context.Context, bytecode []byte, contractABI *abi.ABI, args ...any) (*Result, error) {
	log := util.LogFromContext(ctx)

	if len(bytecode) == 0 {
		return nil, ErrEmptyBytecode
	}

	data := append([]byte{}, bytecode...)
	if contractABI != nil {
		packed, err := contractABI.Pack("", args...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to pack constructor arguments")
		}
		data = append(data, packed...)
	} else if len(args) > 0 {
		return nil, errors.New("constructor arguments need an ABI")
	}

	log.Info().Str("from", s.tr.From().Hex()).Int("bytecode_size", len(bytecode)).Msg("Deploying contract")

	receipt, err := s.tr.Send(ctx, nil, nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "deployment failed")
	}

	if receipt.ContractAddress == (common.Address{}) {
		return nil, errors.Errorf("receipt of %s has no contract address", receipt.TxHash.Hex())
	}

	res := &Result{
		Address:     receipt.ContractAddress,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}

	log.Info().
		Str("contract", res.Address.Hex()).
		Str("tx_hash", res.TxHash.Hex()).
		Uint64("block_number", res.BlockNumber).
		Msg("Contract deployed")

	return res, nil
}

// LoadBytecode reads creation bytecode from path. Accepted are a hex file (0x prefix optional,
// whitespace ignored) or a compiler artifact JSON with a "bytecode" field, either a string
// or an object with "object" as solc emits it.
func LoadBytecode(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read bytecode file %s", path)
	}

	return ParseBytecode(raw)
}

func ParseBytecode(raw []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var artifact struct {
			Bytecode json.RawMessage `json:"bytecode"`
		}
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return nil, errors.Wrap(err, "failed to decode artifact")
		}

		var s string
		if err := json.Unmarshal(artifact.Bytecode, &s); err != nil {
			var obj struct {
				Object string `json:"object"`
			}
			if err := json.Unmarshal(artifact.Bytecode, &obj); err != nil {
				return nil, errors.New("artifact has no bytecode field")
			}
			s = obj.Object
		}
		trimmed = []byte(s)
	}

	s := strings.Join(strings.Fields(string(trimmed)), "")
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}

	code, err := hexutil.Decode(s)
	if err != nil {
		if s == "0x" {
			return nil, ErrEmptyBytecode
		}
		return nil, errors.Wrap(err, "invalid bytecode hex")
	}

	if len(code) == 0 {
		return nil, ErrEmptyBytecode
	}

	return code, nil
}
