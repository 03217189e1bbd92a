package product

import (
	"errors"
	"fmt"
)

// Product represents a row of the products table
type Product struct {
	ID    int64   `gorm:"primaryKey;column:id" json:"id"`
	Name  string  `gorm:"column:name" json:"name"`
	Price float64 `gorm:"column:price" json:"price"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// Input is the request payload for create and update
type Input struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate rejects payloads whose name or price is missing, empty or zero
func (in Input) Validate() error {
	if in.Name == "" || in.Price == 0 {
		return ErrValidation
	}
	return nil
}

var (
	// ErrValidation is returned when a required field is absent
	ErrValidation = errors.New("name and price are required")
	// ErrNotFound is returned when an update or delete matched no row
	ErrNotFound = errors.New("product not found")
)

// StoreError wraps any failure reported by the database driver
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
