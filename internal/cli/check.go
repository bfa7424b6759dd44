package cli

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kifulab/kifu/game"
	"github.com/kifulab/kifu/sgf"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <record.sgf>",
		Short: "Replay a record and verify every move is legal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rules()
			if err != nil {
				return err
			}
			tree, err := sgf.ParseFile(args[0])
			if err != nil {
				return err
			}
			info := tree.Info()
			slog.Debug("record loaded",
				slog.Int("rows", info.Rows),
				slog.Int("cols", info.Cols),
				slog.String("rules", r.Name()))

			states, err := sgf.Replay(tree, r, game.NewHasher(1337))
			if err != nil {
				var illegal *sgf.IllegalMoveError
				if errors.As(err, &illegal) {
					return errors.Errorf("%s: %v", args[0], illegal)
				}
				return err
			}

			final := states[len(states)-1]
			caps := final.Captures()
			fmt.Printf("%s: %d moves, all legal under %s rules\n", args[0], len(states)-1, r.Name())
			fmt.Printf("captures: black %d, white %d\n", caps.Black, caps.White)
			if info.Result != "" {
				fmt.Printf("result: %s\n", info.Result)
			}
			return nil
		},
	}
}
