package store

import (
	"context"

	"github.com/pankajredekar/productapi/internal/product"
	"gorm.io/gorm"
)

// ProductStore runs product statements against the products table
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a product store. A nil db yields a store whose
// every call fails with ErrNotConnected.
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) conn(ctx context.Context) (*gorm.DB, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}
	return s.db.WithContext(ctx), nil
}

// List selects every column of every row
func (s *ProductStore) List(ctx context.Context) ([]product.Row, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	if err := db.Table(product.Product{}.TableName()).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts name and price; the store assigns p.ID
func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	return db.Create(p).Error
}

// Update sets name and price for id and reports the affected-row count
func (s *ProductStore) Update(ctx context.Context, id string, in product.Input) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	result := db.Exec("UPDATE products SET name = ?, price = ? WHERE id = ?", in.Name, in.Price, id)
	return result.RowsAffected, result.Error
}

// Delete removes id and reports the affected-row count
func (s *ProductStore) Delete(ctx context.Context, id string) (int64, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}

	result := db.Exec("DELETE FROM products WHERE id = ?", id)
	return result.RowsAffected, result.Error
}
