package engine

import (
	"github.com/shopspring/decimal"

	"matchbook/internal/apperr"
	"matchbook/internal/command"
	"matchbook/internal/common"
)

// OrderBook is the per-pair container described in spec.md 4.3: it owns
// one pair's bid/ask price-level indices, the id index that is
// authoritative for remaining quantity, the admission sequence, and the
// trade log this pair has produced so far.
type OrderBook struct {
	pair   string
	bids   *priceLevelIndex
	asks   *priceLevelIndex
	ids    *idIndex
	seq    uint64
	trades []Trade
}

func newOrderBook(pair string) *OrderBook {
	ids := newIDIndex()
	return &OrderBook{
		pair: pair,
		bids: newBidIndex(ids),
		asks: newAskIndex(ids),
		ids:  ids,
	}
}

// Process dispatches a single command onto this book. DELETE only ever
// touches the id index — it never eagerly reaches into the price-level
// queues. An unknown id on DELETE is a documented no-op, not an error.
func (b *OrderBook) Process(cmd command.Command) error {
	if cmd.Op == common.OpDelete {
		b.ids.remove(cmd.OrderID)
		return nil
	}
	return b.create(cmd)
}

func (b *OrderBook) create(cmd command.Command) error {
	price, err := decimal.NewFromString(cmd.LimitPrice)
	if err != nil || !price.IsPositive() {
		return apperr.Wrap(apperr.KindInvalidDecimal, "limit_price must be a positive decimal", err)
	}
	amount, err := decimal.NewFromString(cmd.Amount)
	if err != nil || !amount.IsPositive() {
		return apperr.Wrap(apperr.KindInvalidDecimal, "amount must be a positive decimal", err)
	}
	if b.ids.live(cmd.OrderID) {
		return apperr.New(apperr.KindInvalidOrder, "duplicate order_id "+cmd.OrderID)
	}

	order := &Order{
		ID:        cmd.OrderID,
		Account:   cmd.AccountID,
		Pair:      cmd.Pair,
		Side:      cmd.Side,
		Price:     price,
		Remaining: amount,
		TS:        b.seq,
	}
	b.seq++

	b.matchOrder(order)
	if order.Remaining.IsPositive() {
		b.add(order)
	}
	return nil
}

// add inserts a resting order into both the id index and its side's
// price-level queue.
func (b *OrderBook) add(order *Order) {
	b.ids.insert(order)
	b.sideIndex(order.Side).push(order)
}

func (b *OrderBook) sideIndex(side common.Side) *priceLevelIndex {
	if side == common.Buy {
		return b.bids
	}
	return b.asks
}

// matchOrder is the crossing loop of spec.md 4.3: it drains the opposite
// side while the incoming order still has quantity left and the opposite
// top still crosses the incoming limit price, emitting one Trade per fill
// at the resting (maker) order's price.
func (b *OrderBook) matchOrder(incoming *Order) {
	opp := b.sideIndex(oppositeSide(incoming.Side))
	eventTS := incoming.TS

	for incoming.Remaining.IsPositive() {
		best, ok := opp.peekLive()
		if !ok {
			break
		}
		if !crosses(incoming.Side, incoming.Price, best.Price) {
			break
		}

		tradeQty := decimal.Min(incoming.Remaining, best.Remaining)
		tradePrice := best.Price

		trade := Trade{
			Pair:   b.pair,
			Price:  tradePrice,
			Amount: tradeQty,
			TS:     eventTS,
		}
		if incoming.Side == common.Buy {
			trade.BuyOrderID = incoming.ID
			trade.SellOrderID = best.ID
		} else {
			trade.BuyOrderID = best.ID
			trade.SellOrderID = incoming.ID
		}
		b.trades = append(b.trades, trade)

		incoming.Remaining = incoming.Remaining.Sub(tradeQty)
		remaining := best.Remaining.Sub(tradeQty)

		if remaining.IsZero() {
			// Removing best from idIndex is enough: the next peekLive on
			// this side will find best.ID at the queue head, see it's no
			// longer live, and discard just that one stale entry.
			b.ids.remove(best.ID)
		} else {
			b.ids.updateRemaining(best.ID, remaining)
		}
	}
}

// crosses implements the side-specific crossing predicate: a BUY crosses
// when the opposite (ask) top is at or below the incoming limit; a SELL
// crosses when the opposite (bid) top is at or above the incoming limit.
func crosses(incomingSide common.Side, incomingPrice, oppTop decimal.Decimal) bool {
	if incomingSide == common.Buy {
		return oppTop.LessThanOrEqual(incomingPrice)
	}
	return oppTop.GreaterThanOrEqual(incomingPrice)
}

func oppositeSide(side common.Side) common.Side {
	if side == common.Buy {
		return common.Sell
	}
	return common.Buy
}

// Trades returns the trades this book has produced so far, in the exact
// order matchOrder emitted them.
func (b *OrderBook) Trades() []Trade {
	return b.trades
}

// Normalize produces the deterministic snapshot described in spec.md 4.5.
func (b *OrderBook) Normalize() Snapshot {
	snap := Snapshot{Pair: b.pair}
	b.bids.scanLive(func(o *Order) {
		snap.Bids = append(snap.Bids, entryFrom(o))
	})
	b.asks.scanLive(func(o *Order) {
		snap.Asks = append(snap.Asks, entryFrom(o))
	})
	return snap
}

func entryFrom(o *Order) BookEntry {
	return BookEntry{
		ID:        o.ID,
		Price:     o.Price,
		Remaining: o.Remaining,
		Account:   o.Account,
	}
}
