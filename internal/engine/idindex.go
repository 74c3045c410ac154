package engine

import "github.com/shopspring/decimal"

// idIndex is the authoritative order_id -> Order mapping for one book.
// remaining always lives here; the price-level index only ever stores IDs
// and resolves them through this map, so there is a single writer of
// truth for "how much of this order is left".
type idIndex struct {
	orders map[string]*Order
}

func newIDIndex() *idIndex {
	return &idIndex{orders: make(map[string]*Order)}
}

func (ix *idIndex) insert(o *Order) {
	ix.orders[o.ID] = o
}

func (ix *idIndex) get(id string) (*Order, bool) {
	o, ok := ix.orders[id]
	return o, ok
}

func (ix *idIndex) remove(id string) {
	delete(ix.orders, id)
}

// updateRemaining mutates the live order's Remaining in place. Since the
// price-level index holds only the ID and always re-reads through this
// index, this is the only place Remaining ever changes after admission.
func (ix *idIndex) updateRemaining(id string, remaining decimal.Decimal) {
	if o, ok := ix.orders[id]; ok {
		o.Remaining = remaining
	}
}

// live reports whether id names an order still present with positive
// remaining quantity.
func (ix *idIndex) live(id string) bool {
	o, ok := ix.orders[id]
	return ok && o.Remaining.IsPositive()
}
