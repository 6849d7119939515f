// Command hnswbench builds and queries an hnsw.Graph over fvecs/ivecs
// datasets, reporting build time, query latency percentiles, and recall@k —
// the external harness of spec.md §1, with no algorithmic content of its
// own beyond what package hnsw already exposes.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
