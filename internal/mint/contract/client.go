package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/util"
)

// Client calls the mint contract through a transactor. Reads are sent from the transactor's
// address, which matters for owner-only views.
type Client struct {
	*Binding
	tr *chain.Transactor
}

func NewClient(binding *Binding, tr *chain.Transactor) *Client {
	return &Client{
		Binding: binding,
		tr:      tr,
	}
}

// As returns a client for the same contract sending from another account.
func (c *Client) As(tr *chain.Transactor) *Client {
	return NewClient(c.Binding, tr)
}

func (c *Client) From() common.Address {
	return c.tr.From()
}

// Status is a snapshot of the sale flags.
type Status struct {
	Owner         common.Address
	Paused        bool
	WhiteListSale bool
	PublicSale    bool
	Revealed      bool
	TotalSupply   *big.Int
}

func (c *Client) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := c.ABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s", method)
	}

	out, err := c.tr.Call(ctx, c.Address, data)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s", method)
	}

	values, err := c.ABI.Unpack(method, out)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unpack %s", method)
	}

	if len(values) == 0 {
		return nil, errors.Errorf("%s returned no values", method)
	}

	return values, nil
}

func (c *Client) callBool(ctx context.Context, method string) (bool, error) {
	values, err := c.call(ctx, method)
	if err != nil {
		return false, err
	}

	v, ok := values[0].(bool)
	if !ok {
		return false, errors.Errorf("%s returned %T, want bool", method, values[0])
	}

	return v, nil
}

func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	values, err := c.call(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}

	owner, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, errors.Errorf("owner returned %T, want address", values[0])
	}

	return owner, nil
}

func (c *Client) Paused(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "pause")
}

func (c *Client) WhiteListSale(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "whiteListSale")
}

func (c *Client) PublicSale(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "publicSale")
}

func (c *Client) IsRevealed(ctx context.Context) (bool, error) {
	return c.callBool(ctx, "isRevealed")
}

func (c *Client) TotalSupply(ctx context.Context) (*big.Int, error) {
	values, err := c.call(ctx, "totalSupply")
	if err != nil {
		return nil, err
	}

	supply, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("totalSupply returned %T, want uint256", values[0])
	}

	return supply, nil
}

func (c *Client) Status(ctx context.Context) (*Status, error) {
	var (
		s   Status
		err error
	)

	if s.Owner, err = c.Owner(ctx); err != nil {
		return nil, err
	}
	if s.Paused, err = c.Paused(ctx); err != nil {
		return nil, err
	}
	if s.WhiteListSale, err = c.WhiteListSale(ctx); err != nil {
		return nil, err
	}
	if s.PublicSale, err = c.PublicSale(ctx); err != nil {
		return nil, err
	}
	if s.Revealed, err = c.IsRevealed(ctx); err != nil {
		return nil, err
	}
	if s.TotalSupply, err = c.TotalSupply(ctx); err != nil {
		return nil, err
	}

	return &s, nil
}

func (c *Client) transact(ctx context.Context, value *big.Int, method string, args ...any) (*types.Receipt, error) {
	data, err := c.ABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s", method)
	}

	receipt, err := c.tr.Send(ctx, &c.Address, value, data)
	if err != nil {
		return receipt, errors.Wrapf(err, "transact %s", method)
	}

	util.LogFromContext(ctx).Info().
		Str("method", method).
		Str("from", c.tr.From().Hex()).
		Str("tx_hash", receipt.TxHash.Hex()).
		Uint64("block_number", receipt.BlockNumber.Uint64()).
		Msg("Contract transaction mined")

	return receipt, nil
}

// Mint sends a public mint paying PublicMintPrice per token.
func (c *Client) Mint(ctx context.Context, quantity uint64) (*types.Receipt, error) {
	return c.MintWithValue(ctx, quantity, Cost(PublicMintPrice, quantity))
}

func (c *Client) MintWithValue(ctx context.Context, quantity uint64, value *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, value, "mint", new(big.Int).SetUint64(quantity))
}

// WhitelistMint sends an allowlist mint with a proof from the signer service, paying WhitelistMintPrice.
func (c *Client) WhitelistMint(ctx context.Context, quantity uint64, messageHash common.Hash, signature []byte) (*types.Receipt, error) {
	return c.WhitelistMintWithValue(ctx, quantity, messageHash, signature, WhitelistMintPrice)
}

func (c *Client) WhitelistMintWithValue(ctx context.Context, quantity uint64, messageHash common.Hash, signature []byte, value *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, value, "whitelistMint", new(big.Int).SetUint64(quantity), messageHash, signature)
}

func (c *Client) TeamMint(ctx context.Context) (*types.Receipt, error) {
	return c.transact(ctx, nil, "teamMint")
}

func (c *Client) toggle(ctx context.Context, method string, event string) (bool, error) {
	receipt, err := c.transact(ctx, nil, method)
	if err != nil {
		return false, err
	}

	return c.ParseToggled(receipt, event)
}

// TogglePause flips the pause flag and returns the new value as emitted by PauseToggled.
func (c *Client) TogglePause(ctx context.Context) (bool, error) {
	return c.toggle(ctx, "togglePause", EventPauseToggled)
}

func (c *Client) ToggleWhiteListSale(ctx context.Context) (bool, error) {
	return c.toggle(ctx, "toggleWhiteListSale", EventWhiteListSaleToggled)
}

func (c *Client) TogglePublicSale(ctx context.Context) (bool, error) {
	return c.toggle(ctx, "togglePublicSale", EventPublicSaleToggled)
}

func (c *Client) ToggleReveal(ctx context.Context) (bool, error) {
	return c.toggle(ctx, "toggleReveal", EventRevealToggled)
}
