package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/kifulab/kifu/encoding/mjpeg"
	"github.com/kifulab/kifu/game"
	"github.com/kifulab/kifu/sgf"
)

func newWatchCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <record.sgf>",
		Short: "Serve a record as a live MJPEG stream, advancing move by move",
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

			enc := mjpeg.NewEncoder(cfg.Render.MaxHeight, cfg.Render.MaxWidth)
			go func() {
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for i := 0; ; i = (i + 1) % len(states) {
					var caption string
					if i > 0 && i-1 < len(moves) {
						caption = fmt.Sprintf("move %d: %v", i, moves[i-1])
					}
					if err := enc.Encode(states[i], caption); err != nil {
						slog.Error("encoding frame", slog.String("error", err.Error()))
						return
					}
					<-ticker.C
				}
			}()

			slog.Info("watching", slog.String("addr", addr), slog.Int("states", len(states)))
			return http.ListenAndServe(addr, enc)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "Listen address")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Delay between moves")
	return cmd
}
