package keystore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/config"
	"github/chapool/nft-mint/internal/mint/keystore"
	"github/chapool/nft-mint/internal/mint/signer"
	"github/chapool/nft-mint/internal/util/command"
)

func newShow() *cobra.Command {
	var (
		name    string
		decrypt bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Prints the metadata of a stored keystore",
		Long: `Prints the metadata of a stored keystore. The secret itself is never printed,
--decrypt only verifies the password and the stored address.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return command.WithDB(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, cfg config.Server, db *sql.DB) error {
				return runShow(ctx, keystore.NewService(db), name, decrypt, cfg.Signer.DerivationPath)
			})
		},
	}

	cmd.Flags().StringVar(&name, nameFlag, "signer", "Name of the keystore.")
	cmd.Flags().BoolVar(&decrypt, decryptFlag, false, "Prompt for the password and verify it.")

	return cmd
}

func runShow(ctx context.Context, ks keystore.Service, name string, decrypt bool, derivationPath string) error {
	stored, err := ks.Get(ctx, name)
	if err != nil {
		return err
	}

	fmt.Printf("Name:     %s\n", stored.Name)
	fmt.Printf("ID:       %s\n", stored.ID)
	fmt.Printf("Address:  %s\n", stored.Address)
	fmt.Printf("Cipher:   %s (%s)\n", stored.Cipher, stored.KDF)
	fmt.Printf("Created:  %s\n", stored.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if !decrypt {
		return nil
	}

	password, err := command.PromptPassword("Password: ")
	if err != nil {
		return err
	}

	secret, err := ks.Decrypt(ctx, stored, password)
	if err != nil {
		return err
	}

	key, err := signer.KeyFromSecret(secret, derivationPath)
	if err != nil {
		return err
	}

	if derived := crypto.PubkeyToAddress(key.PublicKey).Hex(); !strings.EqualFold(derived, stored.Address) {
		return errors.Errorf("decrypted key belongs to %s, stored address is %s", derived, stored.Address)
	}

	fmt.Println("Password ok")

	return nil
}
