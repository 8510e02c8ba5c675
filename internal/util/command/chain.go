package command

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/mint/keystore"
	"github/chapool/nft-mint/internal/mint/signer"
	"github/chapool/nft-mint/internal/util"
	"golang.org/x/term"
)

var ErrNoContractAddress = errors.New("CONTRACT_ADDRESS is not set")

// PromptPassword reads a password from the terminal without echo.
func PromptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit int
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal, set the password through ENV")
	}

	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	return strings.TrimSpace(string(b)), nil
}

// LoadKey resolves key like the server does. Keystore keys open a short lived database
// connection and prompt for the password when none is configured.
func LoadKey(ctx context.Context, cfg config.Server, key config.Key) (*ecdsa.PrivateKey, error) {
	if key.Source != config.KeySourceKeystore {
		return signer.LoadKey(ctx, key, nil)
	}

	if key.KeystorePassword == "" {
		pw, err := PromptPassword(fmt.Sprintf("Password for keystore %q: ", key.KeystoreName))
		if err != nil {
			return nil, err
		}
		key.KeystorePassword = pw
	}

	db, err := api.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return signer.LoadKey(ctx, key, keystore.NewService(db))
}

// DialChain connects to the configured RPC URLs and checks the chain id.
func DialChain(ctx context.Context, cfg config.Server) (*chain.RPCClient, error) {
	client, err := chain.NewRPCClient(ctx, cfg.Chain.RPCURLs)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.Chain.RequestTimeout)
	defer cancel()

	id, err := client.ChainID(dialCtx)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to get chain id")
	}

	if cfg.Chain.ChainID != 0 && id.Int64() != cfg.Chain.ChainID {
		client.Close()
		return nil, errors.Errorf("node reports chain id %d, configured is %d", id.Int64(), cfg.Chain.ChainID)
	}

	util.LogFromContext(ctx).Debug().Int64("chain_id", id.Int64()).Msg("Connected to chain")

	return client, nil
}

// Binding returns the configured contract with its ABI.
func Binding(cfg config.Server) (*contract.Binding, error) {
	if cfg.Contract.Address == "" {
		return nil, ErrNoContractAddress
	}
	if !common.IsHexAddress(cfg.Contract.Address) {
		return nil, errors.Errorf("invalid contract address %q", cfg.Contract.Address)
	}

	contractABI, err := contract.LoadABI(cfg.Contract.ABIFile)
	if err != nil {
		return nil, err
	}

	return contract.NewBinding(common.HexToAddress(cfg.Contract.Address), contractABI), nil
}

// WithOwner dials the chain and runs f with a transactor for the owner key.
func WithOwner(ctx context.Context, cfg config.Server, f func(ctx context.Context, tr *chain.Transactor) error) error {
	ConfigureLogger(cfg.Logger)

	key, err := LoadKey(ctx, cfg, cfg.Owner)
	if err != nil {
		return errors.Wrap(err, "failed to load owner key")
	}

	client, err := DialChain(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	tr, err := chain.NewTransactor(ctx, client, key)
	if err != nil {
		return err
	}

	return f(ctx, tr)
}
