package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDocumentPlainText(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "modelos_tc.txt")
	content := "## TC – Crânio\n\n**Título**: TC Crânio\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if text != content {
		t.Fatalf("plain text altered: %q", text)
	}
}

func TestReadDocumentHTML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "modelos_rx.html")
	html := `<html><body>
<h2>2.1.1 RX – Tórax</h2>
<p><strong>Título</strong>: RX Tórax (PA/Lateral)</p>
<p><strong>Método</strong>: Radiografias do tórax em PA e perfil.</p>
<p><strong>Achados</strong>: Campos pulmonares livres.</p>
<hr>
<h2>2.1.2 RX – Crânio</h2>
<p><strong>Título</strong>: RX Crânio</p>
<p><strong>Achados</strong>: Calota craniana preservada.</p>
</body></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "## 2.1.1 RX – Tórax") {
		t.Fatalf("h2 not flattened to header line:\n%s", text)
	}
	if !strings.Contains(text, "---") {
		t.Fatalf("hr not flattened to block separator:\n%s", text)
	}
	if !strings.Contains(text, "**Título**") {
		t.Fatalf("strong not flattened to bold markup:\n%s", text)
	}

	records, _ := ParseDocument(text, "modelos_rx.html")
	if len(records) != 2 {
		t.Fatalf("parsed %d records from flattened html, want 2", len(records))
	}
	if records[0].Title != "RX Tórax (PA/Lateral)" {
		t.Fatalf("first title = %q", records[0].Title)
	}
	if records[1].BodyRegion != "Crânio" {
		t.Fatalf("second region = %q", records[1].BodyRegion)
	}
}

func TestReadDocumentMissingFile(t *testing.T) {
	if _, err := ReadDocument(filepath.Join(t.TempDir(), "nao_existe.md")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
