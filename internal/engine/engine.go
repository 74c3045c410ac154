package engine

import (
	"sort"

	"matchbook/internal/command"
)

// MatcherEngine fans out commands by pair and owns every book, as
// described in spec.md 4.4. Books are created lazily on first encounter
// of their pair.
type MatcherEngine struct {
	books map[string]*OrderBook
	order []string // first-seen pair order, for stable Finish output
}

func New() *MatcherEngine {
	return &MatcherEngine{books: make(map[string]*OrderBook)}
}

// Ingest routes cmd to the book for its pair, creating that book on first
// use. Commands must be fed in strict input order for the sequential
// single-threaded contract spec.md 5 requires.
func (e *MatcherEngine) Ingest(cmd command.Command) error {
	return e.bookFor(cmd.Pair).Process(cmd)
}

func (e *MatcherEngine) bookFor(pair string) *OrderBook {
	book, ok := e.books[pair]
	if !ok {
		book = newOrderBook(pair)
		e.books[pair] = book
		e.order = append(e.order, pair)
	}
	return book
}

// Finish yields every book's snapshot and the full trade log, concatenated
// per book in the pair's first-seen order. Per-book trade order is always
// the strict order matchOrder produced it in; cross-book interleaving is
// unspecified by contract (spec.md 4.4), so first-seen order is simply a
// stable, reproducible choice.
func (e *MatcherEngine) Finish() ([]Snapshot, []Trade) {
	snapshots := make([]Snapshot, 0, len(e.order))
	var trades []Trade
	for _, pair := range e.order {
		book := e.books[pair]
		snapshots = append(snapshots, book.Normalize())
		trades = append(trades, book.Trades()...)
	}
	return snapshots, trades
}

// pairsSorted returns the engine's pairs in lexical order, independent of
// insertion order.
func (e *MatcherEngine) pairsSorted() []string {
	pairs := make([]string, 0, len(e.books))
	for pair := range e.books {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)
	return pairs
}
