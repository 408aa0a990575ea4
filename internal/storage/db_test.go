package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"laudos/internal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "laudos.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestTemplateRoundTrip(t *testing.T) {
	db := openTestDB(t)

	rec := internal.TemplateRecord{
		Title:      "USG Ombro",
		Modality:   "US",
		BodyRegion: "Musculoesquelético",
		Sections: []internal.TemplateSection{
			{Label: "Método", DefaultContent: "Estudo ultrassonográfico do ombro."},
			{Label: "Achados", DefaultContent: "Tendões do manguito rotador íntegros."},
			{Label: "Conclusão", DefaultContent: "Exame dentro dos padrões da normalidade."},
		},
		Complexity: 1,
		IsActive:   true,
		Variants:   []string{"USG Ombro Direito", "USG Ombro Esquerdo"},
	}

	id, err := db.CreateTemplate(rec)
	if err != nil {
		t.Fatal(err)
	}

	stored, err := db.GetTemplate(int(id))
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil {
		t.Fatal("template not found after create")
	}

	rec.ID = int(id)
	if diff := cmp.Diff(rec, *stored); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFindExisting(t *testing.T) {
	db := openTestDB(t)

	rec := internal.TemplateRecord{
		Title:      "TC Crânio",
		Modality:   "TC",
		Sections:   []internal.TemplateSection{{Label: "Achados", DefaultContent: "Sem alterações."}},
		Complexity: 1,
		IsActive:   true,
	}
	if _, err := db.CreateTemplate(rec); err != nil {
		t.Fatal(err)
	}

	exists, err := db.FindExisting("TC Crânio", "TC")
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected existing template")
	}

	exists, err = db.FindExisting("TC Crânio", "RM")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("modality mismatch should not count as existing")
	}
}

func TestDeleteTemplate(t *testing.T) {
	db := openTestDB(t)

	id, err := db.CreateTemplate(internal.TemplateRecord{
		Title:      "RX Tórax",
		Modality:   "RX",
		Sections:   []internal.TemplateSection{{Label: "Achados", DefaultContent: "Normal."}},
		Complexity: 1,
		IsActive:   true,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := db.DeleteTemplate(int(id)); err != nil {
		t.Fatal(err)
	}

	stored, err := db.GetTemplate(int(id))
	if err != nil {
		t.Fatal(err)
	}
	if stored != nil {
		t.Fatal("template still present after delete")
	}

	active, err := db.FindAllActive()
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Fatalf("got %d active templates, want 0", len(active))
	}
}

func TestMetadata(t *testing.T) {
	db := openTestDB(t)

	if err := db.SetMetadata("dedupe.last_run", "2026-09-01T00:00:00Z"); err != nil {
		t.Fatal(err)
	}
	value, err := db.GetMetadata("dedupe.last_run")
	if err != nil {
		t.Fatal(err)
	}
	if value == nil || *value != "2026-09-01T00:00:00Z" {
		t.Fatalf("got %v", value)
	}

	missing, err := db.GetMetadata("nope")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing key, got %v", *missing)
	}
}
