// perft.go - Parallel perft report
package main

import (
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runPerft counts leaf nodes from the configured position and writes a
// report to cfg.OutputFile.
func runPerft(cfg *config.Config) error {
	g, err := cfg.NewGame()
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	workers := worker.WithWorkers(cfg.Perft.Workers)

	var table *hashing.ThreadSafeTable
	var results []worker.ProcessResult
	start := time.Now()
	if cfg.Perft.Hash {
		table = hashing.NewThreadSafeTable(cfg.Perft.HashEntries)
		results, err = worker.DivideWithTable(g, cfg.Perft.Depth, table, workers)
	} else {
		results, err = worker.Divide(g, cfg.Perft.Depth, workers)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	p := message.NewPrinter(language.English)
	if cfg.Perft.Divide {
		sort.Slice(results, func(i, j int) bool {
			return results[i].Move.String() < results[j].Move.String()
		})
		for _, r := range results {
			p.Fprintf(out, "%s: %d\n", r.Move, r.Nodes)
		}
	}

	nodes := worker.Total(results)
	rate := 0
	if elapsed > 0 {
		rate = int(float64(nodes) / elapsed.Seconds())
	}
	p.Fprintf(out, "perft(%d) nodes=%d moves=%d workers=%d rate=%dn/s (%.3fs elapsed)\n",
		cfg.Perft.Depth, nodes, len(results), cfg.Perft.Workers, rate, elapsed.Seconds())
	if table != nil {
		probes, hits := table.Stats()
		p.Fprintf(out, "hash entries=%d probes=%d hits=%d\n", table.Len(), probes, hits)
	}
	return nil
}
