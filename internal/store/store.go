// Package store persists fetched entries to a comma-separated cache file,
// one row per unique date.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stellarview/apod/internal/apod"
)

// Header is the column order of the cache file. No row-index column is
// persisted.
var Header = []string{"date", "title", "explanation", "copyright", "media_type", "url", "hdurl"}

// Dataset is the in-memory image of the cache file, in file order.
type Dataset []apod.Entry

// Contains reports whether a row with the given date exists.
func (d Dataset) Contains(date string) bool {
	for _, e := range d {
		if e.Date == date {
			return true
		}
	}
	return false
}

// DateRange returns the lexicographically smallest and largest dates in the
// dataset. ISO dates sort correctly as strings. Empty strings for an empty
// dataset.
func (d Dataset) DateRange() (first, last string) {
	for _, e := range d {
		if first == "" || e.Date < first {
			first = e.Date
		}
		if e.Date > last {
			last = e.Date
		}
	}
	return first, last
}

func rowOf(e apod.Entry) []string {
	return []string{e.Date, e.Title, e.Explanation, e.Copyright, e.MediaType, e.URL, e.HDURL}
}

func entryOf(row []string) apod.Entry {
	return apod.Entry{
		Date:        row[0],
		Title:       row[1],
		Explanation: row[2],
		Copyright:   row[3],
		MediaType:   row[4],
		URL:         row[5],
		HDURL:       row[6],
	}
}

// Load reads the full cache file into memory. A missing file yields an empty
// dataset and no error. A present but unparseable file (bad CSV, wrong
// header, short rows) is returned as an error; there is no partial recovery.
func Load(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading cache %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loading cache %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !sameHeader(records[0]) {
		return nil, fmt.Errorf("loading cache %s: unexpected header %v", path, records[0])
	}

	ds := make(Dataset, 0, len(records)-1)
	for _, row := range records[1:] {
		ds = append(ds, entryOf(row))
	}
	return ds, nil
}

// Save rewrites the cache file in place with a header row followed by one
// row per entry, in dataset order. The write is not atomic; a crash mid-way
// can corrupt the file, which Load then reports as fatal.
func Save(path string, ds Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving cache %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving cache %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("saving cache %s: %w", path, err)
	}
	for _, e := range ds {
		if err := w.Write(rowOf(e)); err != nil {
			return fmt.Errorf("saving cache %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("saving cache %s: %w", path, err)
	}
	return nil
}

// Upsert loads the dataset at path, appends the entry if its date is not
// already present, and rewrites the file. An existing row with the same date
// is never modified: dedupe wins over update. The returned dataset is the
// file's new in-memory state either way; added reports whether a row was
// appended.
func Upsert(entry apod.Entry, path string) (ds Dataset, added bool, err error) {
	ds, err = Load(path)
	if err != nil {
		return nil, false, err
	}
	if ds.Contains(entry.Date) {
		return ds, false, nil
	}
	ds = append(ds, entry)
	if err := Save(path, ds); err != nil {
		return nil, false, err
	}
	return ds, true, nil
}

func sameHeader(row []string) bool {
	if len(row) != len(Header) {
		return false
	}
	for i, col := range Header {
		if row[i] != col {
			return false
		}
	}
	return true
}
