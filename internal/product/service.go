package product

import (
	"context"
	"errors"
)

// Row is one products row keyed by column name
type Row = map[string]interface{}

// Store executes the single statement behind each operation
type Store interface {
	List(ctx context.Context) ([]Row, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id string, in Input) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Updated is the update response. ID echoes the path parameter untouched.
type Updated struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Service owns the store handle shared by every request
type Service struct {
	store Store
}

// NewService creates a new product service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every row of the products table
func (s *Service) List(ctx context.Context) ([]Row, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, asStoreError("list products", err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Create validates the payload and inserts a new product
func (s *Service) Create(ctx context.Context, in Input) (*Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &Product{Name: in.Name, Price: in.Price}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, asStoreError("create product", err)
	}
	return p, nil
}

// Update replaces name and price of the product with the given id
func (s *Service) Update(ctx context.Context, id string, in Input) (*Updated, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	affected, err := s.store.Update(ctx, id, in)
	if err != nil {
		return nil, asStoreError("update product", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return &Updated{ID: id, Name: in.Name, Price: in.Price}, nil
}

// Delete removes the product with the given id
func (s *Service) Delete(ctx context.Context, id string) error {
	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return asStoreError("delete product", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func asStoreError(op string, err error) error {
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
