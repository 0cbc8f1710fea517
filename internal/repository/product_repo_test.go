package repository

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/CraftLedger/craft_api/internal/models"
	"github.com/CraftLedger/craft_api/internal/utils"
)

func newTestRepo(t *testing.T) (*ProductRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	repo, err := NewProductRepository(path)
	if err != nil {
		t.Fatalf("NewProductRepository: %v", err)
	}
	return repo, path
}

func sampleRecord(id string) *models.ProductRecord {
	image := "abc123_saree.jpg"
	return &models.ProductRecord{
		ID:         id,
		Name:       "Silk Saree",
		Image:      &image,
		Audio:      nil,
		Transcript: "my name is Lakshmi, I weave sarees",
		Story:      "Handwoven by Lakshmi, I on a traditional loom — preserving ancestral textile art.",
		Tags:       []string{"saree", "silk"},
		PriceRange: "₹1500–₹3500",
		QR:         id + ".png",
		CreatedAt:  "2026-08-30T10:00:00Z",
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)

	record := sampleRecord("p1")
	if err := repo.Put(record); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get("p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, record) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, record)
	}
}

func TestGetUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get("never-inserted")
	if !errors.Is(err, utils.ErrProductNotFound) {
		t.Errorf("Get unknown id: err = %v, want ErrProductNotFound", err)
	}
}

func TestPutPersistsAcrossReopen(t *testing.T) {
	repo, path := newTestRepo(t)

	if err := repo.Put(sampleRecord("p1")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	reopened, err := NewProductRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get("p1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Name != "Silk Saree" {
		t.Errorf("Name after reopen = %q, want %q", got.Name, "Silk Saree")
	}
}

func TestPutOverwritesSameID(t *testing.T) {
	repo, _ := newTestRepo(t)

	first := sampleRecord("p1")
	if err := repo.Put(first); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second := sampleRecord("p1")
	second.Name = "Cotton Saree"
	if err := repo.Put(second); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := repo.Get("p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Cotton Saree" {
		t.Errorf("Name = %q, want overwritten value", got.Name)
	}

	n, err := repo.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestCorruptDocumentIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewProductRepository(path)
	if !errors.Is(err, utils.ErrCorruptStore) {
		t.Errorf("NewProductRepository on corrupt document: err = %v, want ErrCorruptStore", err)
	}

	// The corrupt document must survive untouched.
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(data) != "{not json" {
		t.Errorf("corrupt document was modified: %q", string(data))
	}
}

func TestSnapshot(t *testing.T) {
	repo, path := newTestRepo(t)

	if err := repo.Put(sampleRecord("p1")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	bak := path + ".bak"
	if err := repo.Snapshot(bak); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	orig, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	copied, err := os.ReadFile(bak)
	if err != nil {
		t.Fatal(err)
	}
	if string(orig) != string(copied) {
		t.Error("snapshot differs from store document")
	}
}

func TestSnapshotMissingStoreIsNoop(t *testing.T) {
	repo, path := newTestRepo(t)

	bak := path + ".bak"
	if err := repo.Snapshot(bak); err != nil {
		t.Fatalf("Snapshot on empty store: %v", err)
	}
	if _, err := os.Stat(bak); !errors.Is(err, os.ErrNotExist) {
		t.Error("snapshot file created for a store that was never written")
	}
}
