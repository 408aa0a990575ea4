package pipeline

import (
	"path/filepath"
	"testing"

	"laudos/internal"
	"laudos/internal/config"
	"laudos/internal/storage"
)

func TestSmokeImportAndDedupe(t *testing.T) {
	tmp := t.TempDir()
	db, err := storage.Open(filepath.Join(tmp, "laudos.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	cfg, _ := config.Load()
	svc := NewService(db, cfg)

	result, err := svc.ImportDocuments([]string{filepath.Join("testdata", "modelos_rx.md")})
	if err != nil {
		t.Fatal(err)
	}
	if result.Imported != 3 {
		t.Fatalf("imported = %d, want 3", result.Imported)
	}

	// Plant a sparser near-duplicate of the stored thorax template.
	if _, err := db.CreateTemplate(internal.TemplateRecord{
		Title:    "RX Tórax",
		Modality: "RX",
		Sections: []internal.TemplateSection{
			{Label: "Achados", DefaultContent: "Normal."},
		},
		Complexity: 1,
		IsActive:   true,
	}); err != nil {
		t.Fatal(err)
	}

	dedup, err := svc.RunDeduplication()
	if err != nil {
		t.Fatal(err)
	}
	if len(dedup.Deleted) != 1 {
		t.Fatalf("deleted = %v, want one id", dedup.Deleted)
	}

	active, err := db.FindAllActive()
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 3 {
		t.Fatalf("got %d active templates after dedupe, want 3", len(active))
	}
	for _, rec := range active {
		if rec.Title == "RX Tórax" {
			t.Fatal("sparser duplicate survived dedupe")
		}
	}

	report := filepath.Join(tmp, "dedupe.xlsx")
	if err := ExportReportToXLSX(svc.LastReport(), report); err != nil {
		t.Fatal(err)
	}
}
