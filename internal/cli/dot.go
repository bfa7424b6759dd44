package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kifulab/kifu/sgf"
)

func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <record.sgf>",
		Short: "Print the record's variation tree as a Graphviz digraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := sgf.ParseFile(args[0])
			if err != nil {
				return err
			}
			out, err := tree.Dot("kifu")
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}
