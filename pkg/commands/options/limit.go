// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// LimitOptions caps how many records a listing command prints.
type LimitOptions struct {
	Limit int
}

// AddLimitArgs wires the limit flag on the provided command.
func AddLimitArgs(cmd *cobra.Command, o *LimitOptions) {
	cmd.Flags().IntVarP(&o.Limit, "limit", "l", 0,
		"Limit the number of records shown. 0 shows everything.")
}
