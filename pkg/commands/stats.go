package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/boc321/momentum/pkg/runner/statsview"
	"github.com/boc321/momentum/pkg/store"
	"github.com/boc321/momentum/pkg/timeutil"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addStats(topLevel *cobra.Command) {
	window := ""

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "show the thinking tracker",
		Aliases: []string{"tracker"},
		Example: `
momentum stats
momentum stats --window 2w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := statsview.Stats{Persistence: p}
			if window != "" {
				dur, label, err := timeutil.ParseWindow(window)
				if err != nil {
					return err
				}
				s.Window = dur
				s.WindowLabel = label
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", "",
		"Rolling window for the recent count, like 7d, 48h, or 2w.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
