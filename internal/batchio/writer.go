package batchio

import (
	"encoding/json"
	"os"

	"matchbook/internal/apperr"
	"matchbook/internal/engine"
)

// bookEntryDoc is the wire shape of one resting order, per spec.md 6:
// snake_case throughout.
type bookEntryDoc struct {
	ID        string `json:"id"`
	Price     string `json:"price"`
	Remaining string `json:"remaining"`
	Account   string `json:"account"`
}

// snapshotDoc is the wire shape of one pair's order book.
type snapshotDoc struct {
	Pair string         `json:"pair"`
	Bids []bookEntryDoc `json:"bids"`
	Asks []bookEntryDoc `json:"asks"`
}

// tradeDoc is the wire shape of one trade. Note the camelCase
// buyOrderId/sellOrderId against snake_case everywhere else — spec.md 6
// calls this out explicitly and it is reproduced exactly.
type tradeDoc struct {
	Pair        string `json:"pair"`
	BuyOrderID  string `json:"buyOrderId"`
	SellOrderID string `json:"sellOrderId"`
	Price       string `json:"price"`
	Amount      string `json:"amount"`
	TS          uint64 `json:"ts"`
}

// WriteOrderBook writes the order-book snapshot document to path.
func WriteOrderBook(path string, snapshots []engine.Snapshot) error {
	docs := make([]snapshotDoc, 0, len(snapshots))
	for _, snap := range snapshots {
		docs = append(docs, snapshotDoc{
			Pair: snap.Pair,
			Bids: entryDocs(snap.Bids),
			Asks: entryDocs(snap.Asks),
		})
	}
	return writeJSON(path, docs)
}

// WriteTrades writes the trade log document to path.
func WriteTrades(path string, trades []engine.Trade) error {
	docs := make([]tradeDoc, 0, len(trades))
	for _, t := range trades {
		docs = append(docs, tradeDoc{
			Pair:        t.Pair,
			BuyOrderID:  t.BuyOrderID,
			SellOrderID: t.SellOrderID,
			Price:       t.Price.String(),
			Amount:      t.Amount.String(),
			TS:          t.TS,
		})
	}
	return writeJSON(path, docs)
}

func entryDocs(entries []engine.BookEntry) []bookEntryDoc {
	docs := make([]bookEntryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, bookEntryDoc{
			ID:        e.ID,
			Price:     e.Price.String(),
			Remaining: e.Remaining.String(),
			Account:   e.Account,
		})
	}
	return docs
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.KindIO, "failed to encode "+path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.KindIO, "failed to write "+path, err)
	}
	return nil
}
