package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boc321/momentum/pkg/runner/focus"
)

func addFocus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "focus [goal]",
		Short: "set today's focus and get advice for it",
		Long: "Set a focus for today and ask the configured advice " +
			"collaborator for a quote, some encouragement, and next steps. " +
			"Without arguments, shows today's stored focus.",
		Example: `
momentum focus
momentum focus finish the draft
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := focus.Focus{
				Text:    strings.Join(args, " "),
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
