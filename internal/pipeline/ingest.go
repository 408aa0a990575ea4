package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"

	"laudos/internal"
	"laudos/internal/config"
)

// TemplateStore is the persistence collaborator for ingestion and
// deduplication. storage.DB implements it.
type TemplateStore interface {
	FindExisting(title, modality string) (bool, error)
	CreateTemplate(rec internal.TemplateRecord) (int64, error)
	FindAllActive() ([]internal.TemplateRecord, error)
	DeleteTemplate(id int) error
	InsertRun(traceID, kind string, counts map[string]int) error
}

type Service struct {
	store TemplateStore
	cfg   config.Config

	// report rows of the last run, consumed by the XLSX exporters
	lastReport []ReportRow
}

func NewService(store TemplateStore, cfg config.Config) *Service {
	return &Service{store: store, cfg: cfg}
}

type ReportRow struct {
	File     string
	Title    string
	Modality string
	Action   string
}

const (
	ActionImported  = "imported"
	ActionSkipped   = "skipped_existing"
	ActionMalformed = "skipped_malformed"
	ActionKept      = "kept"
	ActionRemoved   = "removed"
)

// ImportDocuments parses each file and persists the records not already
// present under the same title and modality. That exact-match check is a
// cheaper gate than the fuzzy deduplication pass and runs per record.
// Failures are isolated per file: a broken document or a storage error stops
// that file only.
func (s *Service) ImportDocuments(paths []string) (internal.ImportResult, error) {
	start := time.Now()
	result := internal.ImportResult{}
	s.lastReport = s.lastReport[:0]

	for _, path := range paths {
		if err := s.importOne(path, &result); err != nil {
			fmt.Printf("import error file=%s: %v\n", path, err)
		}
	}

	_ = s.store.InsertRun(traceID(), "import", map[string]int{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"totalMs":  int(time.Since(start).Milliseconds()),
	})
	return result, nil
}

func (s *Service) importOne(path string, result *internal.ImportResult) error {
	text, err := ReadDocument(path)
	if err != nil {
		return err
	}

	file := filepath.Base(path)
	records, malformed := ParseDocument(text, file)
	result.Skipped += malformed
	for i := 0; i < malformed; i++ {
		s.lastReport = append(s.lastReport, ReportRow{File: file, Action: ActionMalformed})
	}

	for _, rec := range records {
		exists, err := s.store.FindExisting(rec.Title, rec.Modality)
		if err != nil {
			return err
		}
		if exists {
			result.Skipped++
			s.lastReport = append(s.lastReport, ReportRow{File: file, Title: rec.Title, Modality: rec.Modality, Action: ActionSkipped})
			continue
		}
		if _, err := s.store.CreateTemplate(rec); err != nil {
			return err
		}
		result.Imported++
		s.lastReport = append(s.lastReport, ReportRow{File: file, Title: rec.Title, Modality: rec.Modality, Action: ActionImported})
	}
	return nil
}

// RunDeduplication fetches every active template, clusters near-duplicates
// and deletes the sparser members of each cluster. Running it again on its
// own output deletes nothing.
func (s *Service) RunDeduplication() (internal.DedupResult, error) {
	start := time.Now()
	records, err := s.store.FindAllActive()
	if err != nil {
		return internal.DedupResult{}, err
	}

	canonical, removedIDs := Deduplicate(records)

	s.lastReport = s.lastReport[:0]
	for _, rec := range canonical {
		s.lastReport = append(s.lastReport, ReportRow{Title: rec.Title, Modality: rec.Modality, Action: ActionKept})
	}

	byID := make(map[int]internal.TemplateRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	deleted := make([]int, 0, len(removedIDs))
	for _, id := range removedIDs {
		if err := s.store.DeleteTemplate(id); err != nil {
			fmt.Printf("dedupe delete error id=%d: %v\n", id, err)
			continue
		}
		rec := byID[id]
		s.lastReport = append(s.lastReport, ReportRow{Title: rec.Title, Modality: rec.Modality, Action: ActionRemoved})
		deleted = append(deleted, id)
	}

	_ = s.store.InsertRun(traceID(), "dedupe", map[string]int{
		"examined": len(records),
		"kept":     len(canonical),
		"deleted":  len(deleted),
		"totalMs":  int(time.Since(start).Milliseconds()),
	})
	return internal.DedupResult{Deleted: deleted}, nil
}

// LastReport returns the audit rows of the most recent import or dedupe run.
func (s *Service) LastReport() []ReportRow {
	return s.lastReport
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
