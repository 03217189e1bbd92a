// Package storetest provisions throwaway SQLite databases for tests.
package storetest

import (
	"path/filepath"
	"testing"

	"github.com/pankajredekar/productapi/internal/store"
	"gorm.io/gorm"
)

// ProductsDDL mirrors the externally provisioned products table
const ProductsDDL = `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price REAL NOT NULL
	)
`

// Open returns a file-backed SQLite database holding an empty products table
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenBare(t)
	if err := db.Exec(ProductsDDL).Error; err != nil {
		t.Fatalf("Failed to create products table: %v", err)
	}
	return db
}

// OpenBare returns a file-backed SQLite database with no tables
func OpenBare(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.db")
	db, err := store.Open("sqlite://"+path, 1)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close(db)
	})
	return db
}
