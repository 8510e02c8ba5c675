package keystore

import (
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/util/command"
)

const (
	nameFlag           = "name"
	derivationPathFlag = "derivation-path"
	decryptFlag        = "decrypt"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newImport(),
		newShow(),
	)
}
