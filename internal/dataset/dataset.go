// Package dataset holds the bundled transaction file and its codec.
package dataset

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"finance-dashboard/internal/models"
)

//go:embed transactions.json
var embedded []byte

var ErrInvalidRecord = errors.New("invalid dataset record")

// Load decodes the embedded dataset.
func Load() ([]models.Transaction, error) {
	return Decode(bytes.NewReader(embedded))
}

// LoadFile decodes a dataset file from disk, falling back to the embedded
// dataset when path is empty.
func LoadFile(path string) ([]models.Transaction, error) {
	if path == "" {
		return Load()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a JSON array of transactions and validates every record.
// Record order is kept as found in the file.
func Decode(r io.Reader) ([]models.Transaction, error) {
	var records []models.Transaction
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", ErrInvalidRecord, i, err)
		}
	}

	if records == nil {
		records = []models.Transaction{}
	}
	return records, nil
}

// Encode writes records in the dataset layout, one record per line.
func Encode(w io.Writer, records []models.Transaction) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("[\n"); err != nil {
		return err
	}
	for i, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
		bw.WriteString("  ")
		bw.Write(line)
		if i < len(records)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	if _, err := bw.WriteString("]\n"); err != nil {
		return err
	}

	return bw.Flush()
}
