package engine

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

// priceLevel is one price's FIFO queue of order IDs. The queue holds only
// IDs — remaining quantity is always read live through the idIndex, so a
// partial fill never requires re-pushing a snapshot back into the level;
// only cancellation or a full fill ever makes a queue head stale, and both
// are resolved lazily the next time the level is peeked.
type priceLevel struct {
	price decimal.Decimal
	ids   []string
}

// priceLevelIndex is the per-side priority structure described in
// spec.md 4.1: an ordered map from price to a FIFO queue of orders,
// the "eager price-level map" strategy (design note 9, option b), built
// on the teacher's tidwall/btree BTreeG.
type priceLevelIndex struct {
	levels *btree.BTreeG[*priceLevel]
	ids    *idIndex
}

// newBidIndex orders levels with the highest price first.
func newBidIndex(ids *idIndex) *priceLevelIndex {
	tree := btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price.GreaterThan(b.price)
	})
	return &priceLevelIndex{levels: tree, ids: ids}
}

// newAskIndex orders levels with the lowest price first.
func newAskIndex(ids *idIndex) *priceLevelIndex {
	tree := btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price.LessThan(b.price)
	})
	return &priceLevelIndex{levels: tree, ids: ids}
}

// push admits order into its price level, at the back of that level's
// FIFO queue. Ties at a price are broken by admission order (ts), which
// push order already preserves since ts only ever increases.
func (x *priceLevelIndex) push(order *Order) {
	key := &priceLevel{price: order.Price}
	level, ok := x.levels.GetMut(key)
	if !ok {
		level = &priceLevel{price: order.Price}
		x.levels.Set(level)
	}
	level.ids = append(level.ids, order.ID)
}

// peekLive returns the best live order under this side's priority order,
// discarding any stale (cancelled or fully filled) queue heads it
// encounters along the way.
func (x *priceLevelIndex) peekLive() (*Order, bool) {
	for {
		level, ok := x.levels.MinMut()
		if !ok {
			return nil, false
		}
		for len(level.ids) > 0 {
			id := level.ids[0]
			if order, ok := x.ids.get(id); ok && order.Remaining.IsPositive() {
				return order, true
			}
			level.ids = level.ids[1:]
		}
		// Level fully drained of live entries; drop it and keep looking.
		x.levels.Delete(level)
	}
}

// scanLive walks every live order across all levels in this side's
// priority order (best first), for Normalizer snapshots.
func (x *priceLevelIndex) scanLive(fn func(*Order)) {
	x.levels.Scan(func(level *priceLevel) bool {
		for _, id := range level.ids {
			if order, ok := x.ids.get(id); ok && order.Remaining.IsPositive() {
				fn(order)
			}
		}
		return true
	})
}
