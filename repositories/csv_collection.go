package repositories

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jszwec/csvutil"

	"github.com/thyeshengleng/collection-form/models"
)

// CSVCollection stores the record set in a single CSV file with a header row
type CSVCollection struct {
	mu       sync.Mutex
	filePath string
}

// NewCSVCollection creates a collection backed by the file at filePath
func NewCSVCollection(filePath string) *CSVCollection {
	return &CSVCollection{filePath: filePath}
}

// Load reads every row of the file. A missing or empty file is an empty set.
func (cc *CSVCollection) Load(ctx context.Context) (models.RecordSet, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	file, err := os.Open(cc.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return models.RecordSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", cc.filePath, err)
	}
	defer file.Close()

	return DecodeRecordsCSV(file)
}

// Save writes the set to a temporary file and renames it over the old one
func (cc *CSVCollection) Save(ctx context.Context, set models.RecordSet) error {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	data, err := EncodeRecordsCSV(set)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cc.filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(cc.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write records: %w", err)
	}
	if err := os.Rename(tmpPath, cc.filePath); err != nil {
		return fmt.Errorf("could not replace %s: %w", cc.filePath, err)
	}
	return nil
}

// DecodeRecordsCSV parses CSV rows with a header of field names.
// Columns are matched by name, so column order and missing columns are tolerated.
func DecodeRecordsCSV(r io.Reader) (models.RecordSet, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if errors.Is(err, io.EOF) {
		return models.RecordSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}

	set := models.RecordSet{}
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode csv records: %w", err)
	}
	if set == nil {
		set = models.RecordSet{}
	}
	return set, nil
}

// EncodeRecordsCSV renders the set as CSV with the ID column first.
// An empty set still produces the header row.
func EncodeRecordsCSV(set models.RecordSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)

	if len(set) == 0 {
		if err := enc.EncodeHeader(models.Record{}); err != nil {
			return nil, fmt.Errorf("could not encode csv header: %w", err)
		}
	} else if err := enc.Encode([]models.Record(set)); err != nil {
		return nil, fmt.Errorf("could not encode csv records: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("could not flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
