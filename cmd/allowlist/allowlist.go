package allowlist

import (
	"github.com/spf13/cobra"
	"github/chapool/nft-mint/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("allowlist",
		newList(),
		newImport(),
	)
}
