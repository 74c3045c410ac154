package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/internal/command"
	"matchbook/internal/common"
)

// Scenario 6: multi-pair isolation. Commands interleaved across pairs must
// never cross between books.
func TestMatcherEngine_MultiPairIsolation(t *testing.T) {
	eng := New()

	require.NoError(t, eng.Ingest(create("b1", "acc1", "BTCUSD", common.Buy, "100", "5")))
	require.NoError(t, eng.Ingest(create("s1", "acc2", "ETHUSD", common.Sell, "100", "5")))
	require.NoError(t, eng.Ingest(create("s2", "acc3", "BTCUSD", common.Sell, "100", "5")))
	require.NoError(t, eng.Ingest(create("b2", "acc4", "ETHUSD", common.Buy, "100", "5")))

	snapshots, trades := eng.Finish()
	require.Len(t, snapshots, 2)
	require.Len(t, trades, 2)

	for _, tr := range trades {
		if tr.BuyOrderID == "b1" {
			assert.Equal(t, "BTCUSD", tr.Pair)
			assert.Equal(t, "s2", tr.SellOrderID)
		} else {
			assert.Equal(t, "ETHUSD", tr.Pair)
			assert.Equal(t, "b2", tr.BuyOrderID)
			assert.Equal(t, "s1", tr.SellOrderID)
		}
	}

	for _, snap := range snapshots {
		assert.Empty(t, snap.Bids)
		assert.Empty(t, snap.Asks)
	}
}

// Disjoint pairs must commute: interleaving order across pairs doesn't
// change either book's outcome (spec.md 8).
func TestMatcherEngine_DisjointPairsCommute(t *testing.T) {
	a := New()
	require.NoError(t, a.Ingest(create("b1", "acc1", "BTCUSD", common.Buy, "100", "5")))
	require.NoError(t, a.Ingest(create("s1", "acc2", "ETHUSD", common.Sell, "50", "5")))
	require.NoError(t, a.Ingest(create("s2", "acc3", "BTCUSD", common.Sell, "100", "5")))
	require.NoError(t, a.Ingest(create("b2", "acc4", "ETHUSD", common.Buy, "50", "5")))

	b := New()
	require.NoError(t, b.Ingest(create("s1", "acc2", "ETHUSD", common.Sell, "50", "5")))
	require.NoError(t, b.Ingest(create("b2", "acc4", "ETHUSD", common.Buy, "50", "5")))
	require.NoError(t, b.Ingest(create("b1", "acc1", "BTCUSD", common.Buy, "100", "5")))
	require.NoError(t, b.Ingest(create("s2", "acc3", "BTCUSD", common.Sell, "100", "5")))

	snapA, tradesA := a.Finish()
	snapB, tradesB := b.Finish()

	sortSnapshots(snapA)
	sortSnapshots(snapB)
	assert.ElementsMatch(t, snapA, snapB)
	assert.Equal(t, len(tradesA), len(tradesB))
}

func sortSnapshots(s []Snapshot) {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[j].Pair < s[i].Pair {
				s[i], s[j] = s[j], s[i]
			}
		}
	}
}

// IngestBatch with workers>1 must produce the same per-book outcome as the
// strictly sequential path, since pairs never share state.
func TestMatcherEngine_ParallelMatchesSequential(t *testing.T) {
	cmds := buildMixedBatch()

	seq := New()
	require.NoError(t, seq.IngestBatch(context.Background(), cmds, 1))
	seqSnap, seqTrades := seq.Finish()

	par := New()
	require.NoError(t, par.IngestBatch(context.Background(), cmds, 4))
	parSnap, parTrades := par.Finish()

	sortSnapshots(seqSnap)
	sortSnapshots(parSnap)
	assert.ElementsMatch(t, seqSnap, parSnap)
	assert.Equal(t, len(seqTrades), len(parTrades))
}

func buildMixedBatch() []command.Command {
	return []command.Command{
		create("b1", "acc1", "BTCUSD", common.Buy, "100", "5"),
		create("s1", "acc2", "ETHUSD", common.Sell, "50", "5"),
		create("s2", "acc3", "BTCUSD", common.Sell, "100", "5"),
		create("b2", "acc4", "ETHUSD", common.Buy, "50", "5"),
		create("b3", "acc5", "BTCUSD", common.Buy, "99", "3"),
		create("s3", "acc6", "ETHUSD", common.Sell, "51", "3"),
		del("b3", "BTCUSD"),
		create("s4", "acc7", "BTCUSD", common.Sell, "99", "3"),
	}
}
