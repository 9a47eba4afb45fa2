// Package reflections provides the runner behind `momentum reflections`.
package reflections

import (
	"context"
	"errors"
	"fmt"

	"github.com/boc321/momentum/pkg/printers"
	"github.com/boc321/momentum/pkg/store"
)

type Reflections struct {
	Limit       int
	Persistence store.Persistence
}

// Do prints the reflection history, newest first.
func (n *Reflections) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list reflections, no persistence")
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	all := n.Persistence.Reflections()
	if n.Limit > 0 && len(all) > n.Limit {
		all = all[:n.Limit]
	}

	pp.TitleWithCount("Reflections", len(all))
	pp.Reflections(all...)
	return nil
}
