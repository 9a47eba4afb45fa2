// Package points provides the runner behind `momentum points`.
package points

import (
	"context"
	"fmt"

	"github.com/boc321/momentum/pkg/catalog"
	"github.com/boc321/momentum/pkg/printers"
)

type Points struct{}

// Do lists the stuck-point catalog in home-screen order.
func (n *Points) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")

	pp.Title("Stuck Points")
	pp.StuckPoints(catalog.Categories()...)
	return nil
}
