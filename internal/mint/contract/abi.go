package contract

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/params"
	"github.com/pkg/errors"
)

//go:embed abi/mint_contract.json
var embeddedABI []byte

// Event names of the mint contract.
const (
	EventMinted               = "Minted"
	EventPauseToggled         = "PauseToggled"
	EventWhiteListSaleToggled = "WhiteListSaleToggled"
	EventPublicSaleToggled    = "PublicSaleToggled"
	EventRevealToggled        = "RevealToggled"
)

// MaxWhitelistMint is the per address whitelist limit enforced by the contract.
const MaxWhitelistMint = 3

var (
	// PublicMintPrice is 0.099 ether.
	PublicMintPrice = new(big.Int).Mul(big.NewInt(99), big.NewInt(params.Ether/1000))
	// WhitelistMintPrice is 0.0799 ether.
	WhitelistMintPrice = new(big.Int).Mul(big.NewInt(799), big.NewInt(params.Ether/10000))
)

// Cost returns price * quantity.
func Cost(price *big.Int, quantity uint64) *big.Int {
	return new(big.Int).Mul(price, new(big.Int).SetUint64(quantity))
}

// LoadABI reads the contract ABI from path. An empty path returns the embedded ABI.
// Both a bare ABI array and a hardhat artifact with an "abi" field are accepted.
func LoadABI(path string) (abi.ABI, error) {
	data := embeddedABI
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return abi.ABI{}, errors.Wrapf(err, "failed to read ABI file %s", path)
		}
	}

	return ParseABI(data)
}

func ParseABI(data []byte) (abi.ABI, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return abi.ABI{}, errors.Wrap(err, "failed to decode artifact")
		}
		if len(artifact.ABI) == 0 {
			return abi.ABI{}, errors.New("artifact has no abi field")
		}
		trimmed = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(trimmed))
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "failed to parse ABI")
	}

	if _, ok := parsed.Events[EventMinted]; !ok {
		return abi.ABI{}, errors.Errorf("ABI has no %s event", EventMinted)
	}

	return parsed, nil
}
