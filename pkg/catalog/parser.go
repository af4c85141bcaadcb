package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Load reads a pipe catalog JSON file and returns a Network
func Load(filename string) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	network, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", filename, err)
	}
	return network, nil
}

// Parse decodes a pipe catalog from JSON. The document is either a
// bare array of records or an object with a "pipes" array. Records
// without an identifier are assigned a fresh UUID so that every pipe
// can be addressed by the measurement commands.
func Parse(reader io.Reader) (*Network, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raws []rawRecord
	if err := json.Unmarshal(data, &raws); err != nil {
		var wrapped struct {
			Pipes []rawRecord `json:"pipes"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("catalog is neither a record array nor a pipes object: %w", err)
		}
		raws = wrapped.Pipes
	}

	network := NewNetwork()
	for _, raw := range raws {
		record := &PipeRecord{
			ID:         raw.ID,
			Kind:       raw.Kind,
			Material:   raw.Material,
			Radius:     raw.Radius,
			StartDepth: parseDepth(raw.StartDepth),
			EndDepth:   parseDepth(raw.EndDepth),
			Vertices:   raw.Vertices,
		}
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		network.Add(record)
	}

	return network, nil
}
