package store

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/holonet/pkg/types"
)

// Catalog file names written by ExportCatalog and read by ImportCatalog.
const (
	PeopleFile  = "people.jsonl"
	PlanetsFile = "planets.jsonl"
)

// personRecord is one line of people.jsonl.
type personRecord struct {
	ID        int64   `json:"id,omitempty"`
	Name      string  `json:"name"`
	HairColor *string `json:"hair_color"`
	EyeColor  *string `json:"eye_color"`
}

// planetRecord is one line of planets.jsonl.
type planetRecord struct {
	ID      int64   `json:"id,omitempty"`
	Name    string  `json:"name"`
	Climate *string `json:"climate"`
	Terrain *string `json:"terrain"`
}

// TransferStats counts the records handled by an export or import.
type TransferStats struct {
	People  int
	Planets int
	Skipped int
}

// ExportCatalog writes every person and planet to dir as JSONL, one record
// per line in id order. dir is created if needed.
func ExportCatalog(ctx context.Context, s types.Store, dir string) (TransferStats, error) {
	var stats TransferStats
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stats, fmt.Errorf("create export dir: %w", err)
	}

	people, err := s.People().Fetch(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetching people: %w", err)
	}
	records := make([]json.RawMessage, 0, len(people))
	for _, p := range people {
		line, err := json.Marshal(personRecord{ID: p.ID, Name: p.Name, HairColor: p.HairColor, EyeColor: p.EyeColor})
		if err != nil {
			return stats, fmt.Errorf("encoding person %d: %w", p.ID, err)
		}
		records = append(records, line)
	}
	if err := writeJSONL(filepath.Join(dir, PeopleFile), records); err != nil {
		return stats, err
	}
	stats.People = len(records)

	planets, err := s.Planets().Fetch(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetching planets: %w", err)
	}
	records = make([]json.RawMessage, 0, len(planets))
	for _, p := range planets {
		line, err := json.Marshal(planetRecord{ID: p.ID, Name: p.Name, Climate: p.Climate, Terrain: p.Terrain})
		if err != nil {
			return stats, fmt.Errorf("encoding planet %d: %w", p.ID, err)
		}
		records = append(records, line)
	}
	if err := writeJSONL(filepath.Join(dir, PlanetsFile), records); err != nil {
		return stats, err
	}
	stats.Planets = len(records)
	return stats, nil
}

// ImportCatalog inserts the people and planets found in dir. Ids in the
// files are ignored; the store assigns new ones. Missing files are treated
// as empty. Malformed lines and records without a name are skipped.
func ImportCatalog(ctx context.Context, s types.Store, dir string) (TransferStats, error) {
	var stats TransferStats

	people, err := readJSONL(filepath.Join(dir, PeopleFile))
	if err != nil {
		return stats, err
	}
	for _, raw := range people {
		var rec personRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Name == "" {
			stats.Skipped++
			continue
		}
		p := &types.Person{Name: rec.Name, HairColor: rec.HairColor, EyeColor: rec.EyeColor}
		if _, err := s.People().Set(ctx, p); err != nil {
			return stats, fmt.Errorf("importing person %q: %w", rec.Name, err)
		}
		stats.People++
	}

	planets, err := readJSONL(filepath.Join(dir, PlanetsFile))
	if err != nil {
		return stats, err
	}
	for _, raw := range planets {
		var rec planetRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Name == "" {
			stats.Skipped++
			continue
		}
		p := &types.Planet{Name: rec.Name, Climate: rec.Climate, Terrain: rec.Terrain}
		if _, err := s.Planets().Set(ctx, p); err != nil {
			return stats, fmt.Errorf("importing planet %q: %w", rec.Name, err)
		}
		stats.Planets++
	}
	return stats, nil
}

// readJSONL returns each non-empty line of a JSONL file. Lines that are not
// valid JSON are counted by the caller as skipped, so they are returned
// as-is. A missing file yields no records.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically replaces path with records, one per line, using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
