package contract

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/chain"
	"github/chapool/nft-mint/internal/mint/contract"
	"github/chapool/nft-mint/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("contract",
		newStatus(),
		newToggle(),
		newTeamMint(),
	)
}

// withClient runs f with a contract client sending from the owner key.
func withClient(ctx context.Context, f func(ctx context.Context, c *contract.Client) error) error {
	cfg := config.DefaultServiceConfigFromEnv()

	binding, err := command.Binding(cfg)
	if err != nil {
		return err
	}

	return command.WithOwner(ctx, cfg, func(ctx context.Context, tr *chain.Transactor) error {
		return f(ctx, contract.NewClient(binding, tr))
	})
}

func newStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Prints the sale flags and supply of the contract",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c *contract.Client) error {
				status, err := c.Status(ctx)
				if err != nil {
					return err
				}

				fmt.Printf("Contract:        %s\n", c.Address.Hex())
				fmt.Printf("Owner:           %s\n", status.Owner.Hex())
				fmt.Printf("Paused:          %t\n", status.Paused)
				fmt.Printf("Whitelist sale:  %t\n", status.WhiteListSale)
				fmt.Printf("Public sale:     %t\n", status.PublicSale)
				fmt.Printf("Revealed:        %t\n", status.Revealed)
				fmt.Printf("Total supply:    %s\n", status.TotalSupply)

				return nil
			})
		},
	}
}

type toggleFunc func(c *contract.Client, ctx context.Context) (bool, error)

func newToggle() *cobra.Command {
	toggles := []struct {
		use   string
		short string
		run   toggleFunc
	}{
		{"pause", "Pauses or unpauses minting", (*contract.Client).TogglePause},
		{"whitelist-sale", "Opens or closes the whitelist sale", (*contract.Client).ToggleWhiteListSale},
		{"public-sale", "Opens or closes the public sale", (*contract.Client).TogglePublicSale},
		{"reveal", "Reveals or hides the token metadata", (*contract.Client).ToggleReveal},
	}

	subCommands := make([]*cobra.Command, 0, len(toggles))
	for _, t := range toggles {
		subCommands = append(subCommands, &cobra.Command{
			Use:   t.use,
			Short: t.short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withClient(cmd.Context(), func(ctx context.Context, c *contract.Client) error {
					value, err := t.run(c, ctx)
					if err != nil {
						return err
					}

					fmt.Printf("%s: %t\n", t.use, value)
					return nil
				})
			},
		})
	}

	return command.NewSubcommandGroup("toggle", subCommands...)
}

func newTeamMint() *cobra.Command {
	return &cobra.Command{
		Use:   "team-mint",
		Short: "Mints the team allocation to the owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, c *contract.Client) error {
				receipt, err := c.TeamMint(ctx)
				if err != nil {
					return err
				}

				fmt.Printf("Team mint included in block %s, tx %s\n", receipt.BlockNumber, receipt.TxHash.Hex())
				return nil
			})
		},
	}
}
