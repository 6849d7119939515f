package main

import (
	"encoding/json"

	"github.com/nearbyte/hnsw/hnsw"
)

func snapshotToJSON(snap *hnsw.Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

func snapshotFromJSON(data []byte) (*hnsw.Graph, error) {
	var snap hnsw.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return hnsw.Restore(&snap)
}
