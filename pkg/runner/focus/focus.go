// Package focus provides the runner behind `momentum focus`.
package focus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boc321/momentum/pkg/app"
	"github.com/boc321/momentum/pkg/printers"
)

type Focus struct {
	Text    string
	Service *app.Service
}

// Do submits the focus goal and prints the advice payload. With no text it
// shows today's stored focus, if any.
func (n *Focus) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set focus, no service")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	now := time.Now()
	if n.Text == "" {
		f, ok := n.Service.CurrentFocus(now)
		if !ok {
			fmt.Println("No focus set for today. Try: momentum focus \"your goal\"")
			return nil
		}
		pp.Focus(f.Text, f.Advice)
		return nil
	}

	f, err := n.Service.SetFocus(ctx, n.Text, now)
	if err != nil {
		// Not retried automatically; the user re-runs the command.
		return fmt.Errorf("could not get advice right now, please try again later: %w", err)
	}
	pp.Focus(f.Text, f.Advice)
	return nil
}
