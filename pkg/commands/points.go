package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/boc321/momentum/pkg/runner/points"
)

func addPoints(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "points",
		Short:   "list the stuck-point categories",
		Aliases: []string{"categories"},
		Example: `
momentum points
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := points.Points{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
