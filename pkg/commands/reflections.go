package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/boc321/momentum/pkg/commands/options"
	"github.com/boc321/momentum/pkg/runner/reflections"
	"github.com/boc321/momentum/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addReflections(topLevel *cobra.Command) {
	lo := &options.LimitOptions{}

	cmd := &cobra.Command{
		Use:     "reflections",
		Short:   "list saved reflections, newest first",
		Aliases: []string{"notes"},
		Example: `
momentum reflections
momentum reflections --limit 5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := reflections.Reflections{
				Limit:       lo.Limit,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddLimitArgs(cmd, lo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
