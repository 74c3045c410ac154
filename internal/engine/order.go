package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"matchbook/internal/common"
)

// Order is the authoritative in-flight or resting representation of a
// single order inside one OrderBook. ts is assigned by the owning book on
// admission (a sequence number, never wall-clock) and is the sole
// tie-breaker for time priority at equal price.
type Order struct {
	ID        string
	Account   string
	Pair      string
	Side      common.Side
	Price     decimal.Decimal
	Remaining decimal.Decimal
	TS        uint64
}

func (o *Order) String() string {
	return fmt.Sprintf(
		"Order{id=%s account=%s pair=%s side=%s price=%s remaining=%s ts=%d}",
		o.ID, o.Account, o.Pair, o.Side, o.Price, o.Remaining, o.TS,
	)
}
