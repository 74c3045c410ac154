package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trade is one execution produced while matching an incoming order against
// the opposite side's book. Price is always the resting (maker) order's
// price; ts is the book sequence at the moment the incoming order was
// admitted, shared across every trade that one incoming order produces.
type Trade struct {
	Pair        string
	BuyOrderID  string
	SellOrderID string
	Price       decimal.Decimal
	Amount      decimal.Decimal
	TS          uint64
}

func (t *Trade) String() string {
	return fmt.Sprintf(
		"Trade{pair=%s buy=%s sell=%s price=%s amount=%s ts=%d}",
		t.Pair, t.BuyOrderID, t.SellOrderID, t.Price, t.Amount, t.TS,
	)
}
