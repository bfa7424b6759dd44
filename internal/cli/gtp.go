package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kifulab/kifu/gtp"
)

const engineVersion = "1.0"

func newGtpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gtp",
		Short: "Serve the Go Text Protocol on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rules()
			if err != nil {
				return err
			}
			engine := gtp.New(r, "kifu", engineVersion, nil)
			in, out := engine.Start()
			slog.Debug("gtp engine started", slog.String("rules", r.Name()))

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}
				in <- line
				resp := <-out
				fmt.Print(resp)
				if strings.HasPrefix(strings.TrimSpace(line), "quit") {
					return nil
				}
			}
			return scanner.Err()
		},
	}
}
