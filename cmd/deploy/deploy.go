package deploy

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/mint/deploy"
	"github/chapool/nft-mint/internal/util/command"
)

const bytecodeFlag = "bytecode"

func New() *cobra.Command {
	var bytecodePath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the mint contract",
		Long: `Deploys the mint contract from the OWNER_* key

The bytecode is read from --bytecode or CONTRACT_BYTECODE_FILE, either a hex file or a
hardhat artifact. Prints the contract address once the deployment is mined.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			if bytecodePath == "" {
				bytecodePath = cfg.Contract.BytecodeFile
			}

			return runDeploy(cmd.Context(), cfg, bytecodePath)
		},
	}

	cmd.Flags().StringVar(&bytecodePath, bytecodeFlag, "", "Path to the contract bytecode, defaults to CONTRACT_BYTECODE_FILE.")

	return cmd
}

func runDeploy(ctx context.Context, cfg config.Server, bytecodePath string) error {
	if bytecodePath == "" {
		return errors.New("no bytecode given, set --bytecode or CONTRACT_BYTECODE_FILE")
	}

	bytecode, err := deploy.LoadBytecode(bytecodePath)
	if err != nil {
		return err
	}

	contractABI, err := contract.LoadABI(cfg.Contract.ABIFile)
	if err != nil {
		return err
	}

	return command.WithOwner(ctx, cfg, func(ctx context.Context, tr *chain.Transactor) error {
		res, err := deploy.NewService(tr).Deploy(ctx, bytecode, &contractABI)
		if err != nil {
			return err
		}

		fmt.Printf("Contract deployed to address: %s\n", res.Address.Hex())

		return nil
	})
}
