package allowlist

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/api"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/util/command"
)

func newList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Prints the effective allowlist",
		Long: `Loads the allowlist from ALLOWLIST_SOURCE exactly like the server does and prints
one lowercase address per line.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			command.ConfigureLogger(cfg.Logger)

			var db *sql.DB
			if cfg.Allowlist.Source == config.AllowlistSourceDB {
				var err error
				if db, err = api.NewDB(cfg); err != nil {
					return err
				}
				defer db.Close()
			}

			list, err := api.NewAllowlist(cfg, db)
			if err != nil {
				return err
			}

			for _, e := range list.Entries() {
				if e.Label.Valid {
					fmt.Printf("%s\t%s\n", e.Address, e.Label.String)
					continue
				}
				fmt.Println(e.Address)
			}

			return nil
		},
	}
}
