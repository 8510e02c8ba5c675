package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/test"
	"github/chapool/nft-mint/internal/util/command"
)

func TestWithServer(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		ctx := t.Context()

		var testError = errors.New("test error")

		s.Config.Logger.PrettyPrintConsole = false
		resultErr := command.WithServer(ctx, s.Config, func(ctx context.Context, s *api.Server) error {
			var database string
			err := s.DB.QueryRowContext(ctx, "SELECT current_database();").Scan(&database)
			require.NoError(t, err)

			assert.NotEmpty(t, database)
			assert.True(t, s.Allowlist.Contains(test.AllowlistedAddresses[0]))

			return testError
		})

		assert.Equal(t, testError, resultErr)
	})
}

func TestNewSubcommandGroup(t *testing.T) {
	called := false
	sub := &cobra.Command{
		Use: "list",
		RunE: func(_ *cobra.Command, _ []string) error {
			called = true
			return nil
		},
	}

	root := &cobra.Command{Use: "app"}
	root.AddCommand(command.NewSubcommandGroup("allowlist", sub))
	root.SetArgs([]string{"allowlist", "list"})

	require.NoError(t, root.Execute())
	assert.True(t, called)
}

func TestBinding(t *testing.T) {
	cfg := test.DefaultTestConfig()

	binding, err := command.Binding(cfg)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(test.ContractAddress), binding.Address)
	assert.Contains(t, binding.ABI.Events, "Minted")

	cfg.Contract.Address = ""
	_, err = command.Binding(cfg)
	require.ErrorIs(t, err, command.ErrNoContractAddress)

	cfg.Contract.Address = "0x1234"
	_, err = command.Binding(cfg)
	require.Error(t, err)
}

func TestLoadKeyFromEnv(t *testing.T) {
	cfg := test.DefaultTestConfig()

	key, err := command.LoadKey(t.Context(), cfg, config.Key{
		Source:     config.KeySourceEnv,
		PrivateKey: "0x" + test.SignerPrivateKey,
	})
	require.NoError(t, err)
	assert.Equal(t, test.SignerPrivateKey, common.Bytes2Hex(key.D.FillBytes(make([]byte, 32))))
}
