package cli

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kifulab/kifu/encoding/gif"
	"github.com/kifulab/kifu/game"
	"github.com/kifulab/kifu/sgf"
)

func newRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render <record.sgf>",
		Short: "Render a record as an animated GIF, one frame per move",
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
			states, err := sgf.Replay(tree, r, game.NewHasher(1337))
			if err != nil {
				return err
			}
			moves, err := sgf.MainLinePlays(tree)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.WithMessage(err, "creating output")
			}
			defer f.Close()

			if err := gif.EncodeStates(f, states, moves, cfg.Render.MaxHeight, cfg.Render.MaxWidth); err != nil {
				return err
			}
			slog.Info("rendered", slog.String("out", out), slog.Int("frames", len(states)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "out.gif", "Output file")
	return cmd
}
