package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/cmd/allowlist"
	"github/chapool/nft-mint/cmd/contract"
	"github/chapool/nft-mint/cmd/db"
	"github/chapool/nft-mint/cmd/deploy"
	"github/chapool/nft-mint/cmd/env"
	"github/chapool/nft-mint/cmd/keystore"
	"github/chapool/nft-mint/cmd/probe"
	"github/chapool/nft-mint/cmd/server"
	"github/chapool/nft-mint/cmd/sync"
	"github/chapool/nft-mint/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Allowlist signer and Minted event indexer for the NFT mint contract.
Requires configuration through ENV.`, config.ModuleName),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		allowlist.New(),
		contract.New(),
		db.New(),
		deploy.New(),
		env.New(),
		keystore.New(),
		probe.New(),
		server.New(),
		sync.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
