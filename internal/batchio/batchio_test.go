package batchio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/internal/apperr"
	"matchbook/internal/engine"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestReadCommands_MissingFile(t *testing.T) {
	_, err := ReadCommands(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindIO))
}

func TestReadCommands_RoundTripsValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")
	body := `[{"type_op":"CREATE","account_id":"a","amount":"1","order_id":"o1","pair":"BTCUSD","limit_price":"1","side":"BUY"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cmds, err := ReadCommands(path)
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "o1", cmds[0].OrderID)
}

func TestWriteOrderBook_EmptyBookWritesEmptyArrays(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderbook.json")
	require.NoError(t, WriteOrderBook(path, []engine.Snapshot{{Pair: "BTCUSD"}}))

	data := readFile(t, path)
	assert.Contains(t, string(data), `"bids": []`)
	assert.Contains(t, string(data), `"asks": []`)
}

func TestWriteOrderBook_EncodesEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orderbook.json")
	price := decimal.RequireFromString("100.5")
	remaining := decimal.RequireFromString("3")

	snap := engine.Snapshot{
		Pair: "BTCUSD",
		Bids: []engine.BookEntry{{ID: "b1", Account: "acc1", Price: price, Remaining: remaining}},
	}
	require.NoError(t, WriteOrderBook(path, []engine.Snapshot{snap}))

	data := string(readFile(t, path))
	assert.Contains(t, data, `"id": "b1"`)
	assert.Contains(t, data, `"price": "100.5"`)
	assert.Contains(t, data, `"remaining": "3"`)
}

func TestWriteTrades_UsesCamelCaseOrderIDKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trades.json")
	trade := engine.Trade{
		Pair:        "BTCUSD",
		BuyOrderID:  "b1",
		SellOrderID: "s1",
		Price:       decimal.RequireFromString("100"),
		Amount:      decimal.RequireFromString("5"),
		TS:          3,
	}
	require.NoError(t, WriteTrades(path, []engine.Trade{trade}))

	data := string(readFile(t, path))
	assert.Contains(t, data, `"buyOrderId": "b1"`)
	assert.Contains(t, data, `"sellOrderId": "s1"`)
}

func TestWriteTrades_EmptyLogWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trades.json")
	require.NoError(t, WriteTrades(path, nil))
	assert.Equal(t, "[]", string(readFile(t, path)))
}
