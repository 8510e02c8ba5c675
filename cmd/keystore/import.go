package keystore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/keystore"
	"github/chapool/nft-mint/internal/mint/signer"
	"github/chapool/nft-mint/internal/util/command"
)

func newImport() *cobra.Command {
	var (
		name           string
		derivationPath string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Encrypts a private key or mnemonic into the database",
		Long: `Prompts for a hex private key or a mnemonic and a password and stores the
encrypted secret under --name. Use it with SIGNER_KEY_SOURCE=keystore or
OWNER_KEY_SOURCE=keystore.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, _ config.Server, db *sql.DB) error {
				return runImport(ctx, keystore.NewService(db), name, derivationPath)
			})
		},
	}

	cmd.Flags().StringVar(&name, nameFlag, "signer", "Name of the keystore.")
	cmd.Flags().StringVar(&derivationPath, derivationPathFlag, config.DefaultDerivationPath, "Derivation path used for mnemonics.")

	return cmd
}

func runImport(ctx context.Context, ks keystore.Service, name string, derivationPath string) error {
	exists, err := ks.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(keystore.ErrKeystoreExists, "name %q", name)
	}

	secret, err := command.PromptPassword("Private key or mnemonic: ")
	if err != nil {
		return err
	}

	key, err := signer.KeyFromSecret(secret, derivationPath)
	if err != nil {
		return err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)

	password, err := command.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := command.PromptPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	stored, err := ks.Create(ctx, name, secret, password, address.Hex())
	if err != nil {
		return err
	}

	fmt.Printf("Stored keystore %q for %s\n", stored.Name, stored.Address)

	return nil
}
