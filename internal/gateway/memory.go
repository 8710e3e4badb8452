package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memBlob struct {
	data        []byte
	contentType string
}

// MemoryGateway is an in-memory Gateway used as a test fake. It mirrors the
// SQLite implementation's semantics, including last-writer-wins on documents.
type MemoryGateway struct {
	mu    sync.Mutex
	docs  map[string]map[string]map[string]any // collection -> id -> data
	blobs map[string]memBlob

	// FailWrites, when set, makes all mutating document operations fail
	// with the given error. Used to exercise best-effort write paths.
	FailWrites error
}

// NewMemoryGateway returns an empty in-memory gateway
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		docs:  map[string]map[string]map[string]any{},
		blobs: map[string]memBlob{},
	}
}

func (g *MemoryGateway) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	doc, ok := g.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (g *MemoryGateway) SetDocument(ctx context.Context, collection, id string, data map[string]any, merge bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailWrites != nil {
		return g.FailWrites
	}

	if g.docs[collection] == nil {
		g.docs[collection] = map[string]map[string]any{}
	}

	if merge {
		if existing, ok := g.docs[collection][id]; ok {
			merged := cloneDoc(existing)
			for k, v := range data {
				merged[k] = v
			}
			g.docs[collection][id] = merged
			return nil
		}
	}
	g.docs[collection][id] = cloneDoc(data)
	return nil
}

func (g *MemoryGateway) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailWrites != nil {
		return g.FailWrites
	}

	existing, ok := g.docs[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (g *MemoryGateway) AddDocument(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := g.SetDocument(ctx, collection, id, data, false); err != nil {
		return "", err
	}
	return id, nil
}

func (g *MemoryGateway) DeleteDocument(ctx context.Context, collection, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailWrites != nil {
		return g.FailWrites
	}
	delete(g.docs[collection], id)
	return nil
}

func (g *MemoryGateway) Query(ctx context.Context, collection, field string, op Op, value any) ([]Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	results := []Document{}
	for id, data := range g.docs[collection] {
		if matchesOp(data[field], op, value) {
			results = append(results, Document{ID: id, Data: cloneDoc(data)})
		}
	}
	return results, nil
}

func (g *MemoryGateway) UploadBlob(ctx context.Context, path string, data []byte, contentType string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailWrites != nil {
		return g.FailWrites
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	g.blobs[path] = memBlob{data: buf, contentType: contentType}
	return nil
}

func (g *MemoryGateway) GetBlobURL(ctx context.Context, path string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.blobs[path]; !ok {
		return "", ErrNotFound
	}
	return "blob://" + path, nil
}

func (g *MemoryGateway) DeleteBlob(ctx context.Context, path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.FailWrites != nil {
		return g.FailWrites
	}
	delete(g.blobs, path)
	return nil
}

// HasBlob reports whether a blob exists at path. Test helper.
func (g *MemoryGateway) HasBlob(path string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.blobs[path]
	return ok
}

func cloneDoc(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
