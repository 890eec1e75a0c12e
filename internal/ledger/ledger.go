package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/models"
)

// The ledgers are the engine's only cross-run state: one JSON object per
// file, pretty-printed, pruned by age at load time. Loading is fail-open —
// an unreadable file or a record with an unparsable timestamp never aborts a
// run. No cross-process lock is taken; a single writer per run is assumed.

const (
	coverageFile = "covered_stories.json"
	mediaFile    = "used_media_ids.json"
)

// CoverageLedger records which story URLs have already been covered.
type CoverageLedger struct {
	path string
	ttl  time.Duration
	mu   sync.Mutex
}

// NewCoverageLedger creates a ledger stored under dir with the given
// retention in days.
func NewCoverageLedger(dir string, ttlDays int) *CoverageLedger {
	return &CoverageLedger{
		path: filepath.Join(dir, coverageFile),
		ttl:  time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// Load reads the ledger, dropping entries whose date_covered parsed and is
// older than the retention window. Entries with malformed timestamps are
// retained. Any file-level failure yields an empty map.
func (l *CoverageLedger) Load() map[string]models.CoverageRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := map[string]models.CoverageRecord{}
	if !readJSON(l.path, &records) {
		return map[string]models.CoverageRecord{}
	}

	cutoff := time.Now().UTC().Add(-l.ttl)
	kept := make(map[string]models.CoverageRecord, len(records))
	for url, record := range records {
		covered, err := time.Parse(time.RFC3339, record.DateCovered)
		if err == nil && covered.Before(cutoff) {
			continue
		}
		kept[url] = record
	}

	if len(kept) < len(records) {
		logger.Debug().
			Int("pruned", len(records)-len(kept)).
			Str("path", l.path).
			Msg("Pruned expired coverage records")
		if err := writeJSON(l.path, kept); err != nil {
			logger.Warn().Err(err).Str("path", l.path).Msg("Failed to rewrite pruned coverage ledger")
		}
	}
	return kept
}

// Commit marks a story URL as covered, rewriting the whole file.
func (l *CoverageLedger) Commit(url string, record models.CoverageRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := map[string]models.CoverageRecord{}
	readJSON(l.path, &records)
	records[url] = record

	if err := writeJSON(l.path, records); err != nil {
		return fmt.Errorf("failed to commit coverage record: %w", err)
	}
	return nil
}

// MediaLedger records stock media identifiers used recently, keyed by an
// opaque media id with an RFC 3339 timestamp value.
type MediaLedger struct {
	path string
	ttl  time.Duration
	mu   sync.Mutex
}

// NewMediaLedger creates a ledger stored under dir with the given retention
// in days.
func NewMediaLedger(dir string, ttlDays int) *MediaLedger {
	return &MediaLedger{
		path: filepath.Join(dir, mediaFile),
		ttl:  time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// Load returns the set of unexpired media ids. Same pruning and fail-open
// rules as the coverage ledger.
func (l *MediaLedger) Load() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := map[string]string{}
	if !readJSON(l.path, &entries) {
		return map[string]string{}
	}

	cutoff := time.Now().UTC().Add(-l.ttl)
	kept := make(map[string]string, len(entries))
	for id, dateStr := range entries {
		used, err := time.Parse(time.RFC3339, dateStr)
		if err == nil && used.Before(cutoff) {
			continue
		}
		kept[id] = dateStr
	}

	if len(kept) < len(entries) {
		logger.Debug().
			Int("pruned", len(entries)-len(kept)).
			Str("path", l.path).
			Msg("Pruned expired media ids")
		if err := writeJSON(l.path, kept); err != nil {
			logger.Warn().Err(err).Str("path", l.path).Msg("Failed to rewrite pruned media ledger")
		}
	}
	return kept
}

// CommitAll marks the given media ids as used now. Empty ids are skipped.
func (l *MediaLedger) CommitAll(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := map[string]string{}
	readJSON(l.path, &entries)

	now := time.Now().UTC().Format(time.RFC3339)
	for _, id := range ids {
		if id != "" {
			entries[id] = now
		}
	}

	if err := writeJSON(l.path, entries); err != nil {
		return fmt.Errorf("failed to commit media ids: %w", err)
	}
	return nil
}

// readJSON loads path into v, returning false (and logging) on any failure.
// A missing file is a normal fresh start and is not logged as a warning.
func readJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to read ledger file")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Failed to parse ledger file")
		return false
	}
	return true
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	return nil
}
