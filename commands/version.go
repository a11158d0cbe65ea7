package commands

import (
	"fmt"

	"github.com/deemkeen/keytan/util"
	"github.com/spf13/cobra"
)

func addVersion(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the name and version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), util.GetNameAndVersion())
		},
	}

	topLevel.AddCommand(cmd)
}
