// Package cart keeps a shopper's line items in a session scoped store.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Customization is the flavor and box style picked for one unit.
type Customization struct {
	Flavor string `json:"flavor"`
	Box    string `json:"box"`
}

func (c Customization) String() string {
	return fmt.Sprintf("Flavor: %s | Box: %s", c.Flavor, c.Box)
}

// LineItem aggregates every unit of one product. Its quantity is the length
// of Customizations.
type LineItem struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"price"`
	Customizations []Customization `json:"customizations"`
}

func (l LineItem) Quantity() int {
	return len(l.Customizations)
}

func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity())))
}

// Label is the displayed line, e.g. "2 Cheesecake - $64.00".
func (l LineItem) Label() string {
	return fmt.Sprintf("%d %s - $%s", l.Quantity(), l.Name, l.Total().StringFixed(2))
}
