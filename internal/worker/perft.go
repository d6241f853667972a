package worker

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// CountSubtree plays the item's move on its game and counts the leaves
// below it. A move the game rejects is reported as an error.
func CountSubtree(item WorkItem) ProcessResult {
	return Counter(nil)(item)
}

// Counter returns a ProcessFunc like CountSubtree that caches interior
// node counts in table. Workers may share one table. A nil table
// disables caching.
func Counter(table *hashing.ThreadSafeTable) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Move: item.Move}
		if err := item.Game.PlayPair(item.Move); err != nil {
			result.Error = fmt.Errorf("root move %s: %w", item.Move, err)
			return result
		}
		if table == nil {
			result.Nodes = engine.Perft(item.Game, item.Depth)
		} else {
			result.Nodes = cachedPerft(item.Game, item.Depth, table)
		}
		return result
	}
}

// cachedPerft is engine.Perft with a transposition table. It plays and
// undoes moves on g, leaving it as it found it.
func cachedPerft(g *engine.Game, depth int, table *hashing.ThreadSafeTable) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(g.LegalMoves(g.SideToMove())))
	}

	key := hashing.Key(g)
	if nodes, ok := table.Probe(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, mp := range g.LegalMoves(g.SideToMove()) {
		if err := g.PlayPair(mp); err != nil {
			panic("worker: generated move rejected: " + err.Error())
		}
		nodes += cachedPerft(g, depth-1, table)
		if err := g.UndoLastMove(); err != nil {
			panic("worker: " + err.Error())
		}
	}
	table.Store(key, depth, nodes)
	return nodes
}

// Divide computes the perft count below every legal root move of g at
// the given depth, spreading root moves across a pool. Results are in
// root move order. g itself is not modified.
func Divide(g *engine.Game, depth int, opts ...PoolOption) ([]ProcessResult, error) {
	return divide(g, depth, CountSubtree, opts)
}

// DivideWithTable is Divide with workers sharing a transposition table.
func DivideWithTable(g *engine.Game, depth int, table *hashing.ThreadSafeTable, opts ...PoolOption) ([]ProcessResult, error) {
	return divide(g, depth, Counter(table), opts)
}

func divide(g *engine.Game, depth int, count ProcessFunc, opts []PoolOption) ([]ProcessResult, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := g.LegalMoves(g.SideToMove())

	pool := NewPool(count, opts...)
	pool.Start()

	go func() {
		for i, mp := range moves {
			pool.Submit(WorkItem{Index: i, Move: mp, Game: g.Clone(), Depth: depth - 1})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
			pool.Stop()
		}
		results = append(results, result)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, nil
}

// Total sums the node counts of results.
func Total(results []ProcessResult) uint64 {
	var nodes uint64
	for _, r := range results {
		nodes += r.Nodes
	}
	return nodes
}
