package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/CraftLedger/craft_api/internal/models"
	"github.com/CraftLedger/craft_api/internal/utils"
)

// storeDocument is the on-disk layout of the record store: a single JSON
// document holding the full id -> record mapping.
type storeDocument struct {
	Products map[string]models.ProductRecord `json:"products"`
}

// ProductRepository persists ProductRecords in a single JSON document.
// Each Put is a full read-modify-write of the document; the repository
// serializes writers with an internal lock because the document itself
// offers no transaction or optimistic-concurrency guarantee.
type ProductRepository struct {
	mu   sync.Mutex
	path string
}

// NewProductRepository opens the record store at path. A missing document is
// treated as an empty store; a document that exists but cannot be parsed is
// a fatal condition so that a corrupt store is never silently replaced.
func NewProductRepository(path string) (*ProductRepository, error) {
	r := &ProductRepository{path: path}
	if _, err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Put inserts or overwrites the record for record.ID and persists the full
// document. Storage I/O failures propagate to the caller; no partial record
// is considered committed.
func (r *ProductRepository) Put(record *models.ProductRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	doc.Products[record.ID] = *record
	return r.save(doc)
}

// Get returns the record for the given id, or utils.ErrProductNotFound if
// no record with that id was ever stored.
func (r *ProductRepository) Get(id string) (*models.ProductRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	record, ok := doc.Products[id]
	if !ok {
		return nil, utils.ErrProductNotFound
	}
	return &record, nil
}

// Count returns the number of stored records.
func (r *ProductRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(doc.Products), nil
}

// Snapshot copies the current document to dst. Used by the backup worker.
func (r *ProductRepository) Snapshot(dst string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read store document: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store snapshot: %w", err)
	}
	return nil
}

func (r *ProductRepository) load() (*storeDocument, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return &storeDocument{Products: map[string]models.ProductRecord{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store document: %w", err)
	}

	doc := &storeDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", utils.ErrCorruptStore, r.path, err)
	}
	if doc.Products == nil {
		doc.Products = map[string]models.ProductRecord{}
	}
	return doc, nil
}

// save writes the document through a temp file plus rename so that a crash
// mid-write cannot leave a truncated document behind.
func (r *ProductRepository) save(doc *storeDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store document: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store document: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace store document: %w", err)
	}
	return nil
}
