package engine

import (
	"context"

	tomb "gopkg.in/tomb.v2"

	"matchbook/internal/command"
)

// IngestBatch feeds cmds into the engine. With workers <= 1 (the default)
// it is exactly sequential Ingest in input order, the contract spec.md 5
// requires. With workers > 1 it partitions cmds by pair, preserving each
// pair's relative order, and runs each pair's partition on its own
// goroutine drawn from a bounded pool supervised by a tomb.Tomb — the
// commutativity property in spec.md 8 licenses this because books never
// share state and the only thing that must be preserved is intra-pair
// order, which the partition step guarantees.
//
// This is adapted from the teacher's internal/worker.go WorkerPool, which
// supervised TCP connection-handler goroutines with the same tomb
// pattern; here it supervises per-pair book-processing goroutines over a
// closed, already-ordered batch instead of live connections.
func (e *MatcherEngine) IngestBatch(ctx context.Context, cmds []command.Command, workers int) error {
	if workers <= 1 || len(cmds) < 2 {
		for _, cmd := range cmds {
			if err := e.Ingest(cmd); err != nil {
				return err
			}
		}
		return nil
	}

	shards, order := partitionByPair(cmds)
	// Pre-create every book up front, single-threaded, so the goroutines
	// below only ever read e.books and each touches a disjoint entry.
	for _, pair := range order {
		e.bookFor(pair)
	}

	t, ctx := tomb.WithContext(ctx)
	sem := make(chan struct{}, workers)
	for _, pair := range order {
		pair := pair
		book := e.books[pair]
		shard := shards[pair]
		sem <- struct{}{}
		t.Go(func() error {
			defer func() { <-sem }()
			for _, cmd := range shard {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := book.Process(cmd); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return t.Wait()
}

// partitionByPair splits cmds into one ordered slice per pair, preserving
// each command's relative position within its pair, and returns the pairs
// in first-seen order.
func partitionByPair(cmds []command.Command) (map[string][]command.Command, []string) {
	shards := make(map[string][]command.Command)
	var order []string
	for _, cmd := range cmds {
		if _, ok := shards[cmd.Pair]; !ok {
			order = append(order, cmd.Pair)
		}
		shards[cmd.Pair] = append(shards[cmd.Pair], cmd)
	}
	return shards, order
}
