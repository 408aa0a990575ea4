package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"laudos/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS templates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  modality TEXT NOT NULL,
  bodyRegion TEXT,
  sectionsJson TEXT NOT NULL,
  complexity INTEGER NOT NULL DEFAULT 1,
  isActive INTEGER NOT NULL DEFAULT 1,
  variantsJson TEXT,
  targetSex TEXT,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_templates_title ON templates(title);
CREATE INDEX IF NOT EXISTS idx_templates_modality ON templates(modality);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  kind TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// FindExisting reports whether an active template with the same title and
// modality is already persisted. This is the cheap exact-match gate used at
// import time; fuzzy deduplication is a separate pass.
func (d *DB) FindExisting(title, modality string) (bool, error) {
	var one int
	err := d.conn.QueryRow(`
SELECT 1 FROM templates WHERE title = ? AND modality = ? AND isActive = 1 LIMIT 1
`, title, modality).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *DB) CreateTemplate(rec internal.TemplateRecord) (int64, error) {
	sectionsJSON, _ := json.Marshal(rec.Sections)
	variantsJSON, _ := json.Marshal(rec.Variants)

	result, err := d.conn.Exec(`
INSERT INTO templates (title, modality, bodyRegion, sectionsJson, complexity, isActive, variantsJson, targetSex)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, rec.Title, rec.Modality, rec.BodyRegion, string(sectionsJSON), rec.Complexity, boolToInt(rec.IsActive), string(variantsJSON), rec.TargetSex)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) FindAllActive() ([]internal.TemplateRecord, error) {
	rows, err := d.conn.Query(`
SELECT id, title, modality, bodyRegion, sectionsJson, complexity, isActive, variantsJson, targetSex
FROM templates WHERE isActive = 1 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.TemplateRecord
	for rows.Next() {
		rec, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (d *DB) GetTemplate(id int) (*internal.TemplateRecord, error) {
	row := d.conn.QueryRow(`
SELECT id, title, modality, bodyRegion, sectionsJson, complexity, isActive, variantsJson, targetSex
FROM templates WHERE id = ?`, id)

	rec, err := scanTemplate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DB) DeleteTemplate(id int) error {
	_, err := d.conn.Exec(`DELETE FROM templates WHERE id = ?`, id)
	return err
}

func (d *DB) InsertRun(traceID, kind string, counts map[string]int) error {
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`INSERT INTO runs (traceId, kind, countsJson) VALUES (?, ?, ?)`, traceID, kind, string(countsJSON))
	return err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (internal.TemplateRecord, error) {
	var rec internal.TemplateRecord
	var sectionsJSON string
	var variantsJSON sql.NullString
	var targetSex sql.NullString
	var bodyRegion sql.NullString
	var isActive int

	if err := row.Scan(
		&rec.ID, &rec.Title, &rec.Modality, &bodyRegion, &sectionsJSON,
		&rec.Complexity, &isActive, &variantsJSON, &targetSex,
	); err != nil {
		return internal.TemplateRecord{}, err
	}

	rec.BodyRegion = bodyRegion.String
	rec.TargetSex = targetSex.String
	rec.IsActive = isActive != 0
	_ = json.Unmarshal([]byte(sectionsJSON), &rec.Sections)
	if variantsJSON.Valid && variantsJSON.String != "" {
		_ = json.Unmarshal([]byte(variantsJSON.String), &rec.Variants)
	}
	return rec, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
