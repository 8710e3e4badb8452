package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteGateway is a Gateway backed by a local SQLite database. Documents
// are stored as JSON rows keyed by (collection, id); blobs live in their
// own table keyed by path.
type SQLiteGateway struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the gateway database at path.
func OpenSQLite(path string) (*SQLiteGateway, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open gateway database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteGateway{db: db}, nil
}

// Close closes the underlying database
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

// Ping verifies the database connection
func (g *SQLiteGateway) Ping() error {
	return g.db.Ping()
}

// runMigrations creates all necessary tables
func runMigrations(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (collection, id)
	);

	CREATE TABLE IF NOT EXISTS blobs (
		path TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		content_type TEXT,
		uploaded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
	`

	_, err := db.Exec(schema)
	return err
}

func (g *SQLiteGateway) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	var raw string
	err := g.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection=? AND id=?`, collection, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	data := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("corrupt document %s/%s: %w", collection, id, err)
	}
	return data, nil
}

func (g *SQLiteGateway) SetDocument(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	if merge {
		existing, err := g.GetDocument(ctx, collection, id)
		if err != nil && err != ErrNotFound {
			return err
		}
		if existing != nil {
			for k, v := range data {
				existing[k] = v
			}
			data = existing
		}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = g.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		ON CONFLICT(collection, id) DO UPDATE SET data=excluded.data, updated_at=CURRENT_TIMESTAMP`,
		collection, id, string(raw))
	return err
}

func (g *SQLiteGateway) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	existing, err := g.GetDocument(ctx, collection, id)
	if err != nil {
		return err
	}
	for k, v := range fields {
		existing[k] = v
	}

	raw, err := json.Marshal(existing)
	if err != nil {
		return err
	}

	_, err = g.db.ExecContext(ctx,
		`UPDATE documents SET data=?, updated_at=CURRENT_TIMESTAMP WHERE collection=? AND id=?`,
		string(raw), collection, id)
	return err
}

func (g *SQLiteGateway) AddDocument(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := g.SetDocument(ctx, collection, id, data, false); err != nil {
		return "", err
	}
	return id, nil
}

func (g *SQLiteGateway) DeleteDocument(ctx context.Context, collection, id string) error {
	_, err := g.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection=? AND id=?`, collection, id)
	return err
}

func (g *SQLiteGateway) Query(ctx context.Context, collection, field string, op Op, value any) ([]Document, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection=? ORDER BY id`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []Document{}
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}

		data := map[string]any{}
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("corrupt document %s/%s: %w", collection, id, err)
		}

		if matchesOp(data[field], op, value) {
			results = append(results, Document{ID: id, Data: data})
		}
	}
	return results, rows.Err()
}

// matchesOp evaluates a query predicate. Only equality is supported; JSON
// numbers decode as float64, so numeric values are compared as floats.
func matchesOp(fieldValue any, op Op, value any) bool {
	if op != OpEqual {
		return false
	}
	if fv, ok := fieldValue.(float64); ok {
		switch v := value.(type) {
		case float64:
			return fv == v
		case int:
			return fv == float64(v)
		}
	}
	return fieldValue == value
}

func (g *SQLiteGateway) UploadBlob(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO blobs (path, data, content_type) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET data=excluded.data, content_type=excluded.content_type, uploaded_at=CURRENT_TIMESTAMP`,
		path, data, contentType)
	return err
}

func (g *SQLiteGateway) GetBlobURL(ctx context.Context, path string) (string, error) {
	var exists int
	err := g.db.QueryRowContext(ctx,
		`SELECT 1 FROM blobs WHERE path=?`, path).Scan(&exists)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return "blob://" + path, nil
}

// ReadBlob returns the stored bytes for path. Not part of the Gateway
// interface; used by commands that export attachments locally.
func (g *SQLiteGateway) ReadBlob(ctx context.Context, path string) ([]byte, string, error) {
	var data []byte
	var contentType sql.NullString
	err := g.db.QueryRowContext(ctx,
		`SELECT data, content_type FROM blobs WHERE path=?`, path).Scan(&data, &contentType)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, contentType.String, nil
}

func (g *SQLiteGateway) DeleteBlob(ctx context.Context, path string) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM blobs WHERE path=?`, path)
	return err
}
