package engine

import "github.com/shopspring/decimal"

// BookEntry is one resting order as it appears in an output snapshot.
type BookEntry struct {
	ID        string
	Price     decimal.Decimal
	Remaining decimal.Decimal
	Account   string
}

// Snapshot is the deterministic per-pair view produced by Normalize:
// bids sorted by descending price then ascending ts, asks sorted by
// ascending price then ascending ts. Only live orders (remaining > 0)
// appear; ts ordering falls out of FIFO queue order for free, since
// entries are only ever appended in increasing ts order.
type Snapshot struct {
	Pair string
	Bids []BookEntry
	Asks []BookEntry
}
