// Package repository is the shared data-access shim every handler goes
// through. It keeps the error taxonomy in one place: a missing row is
// always ErrNotFound, anything else bubbles up as-is.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Repository instantiates the generic CRUD contract for one resource
// type. It is stateless besides the handle, create one wherever needed.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// All returns rows in primary-key order. The limit follows gorm's Limit
// convention: 0 selects nothing, negative lifts the cap.
func (r *Repository[T]) All(limit int) ([]T, error) {
	var recs []T
	if err := r.db.Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Search matches rows whose column contains term as a substring.
func (r *Repository[T]) Search(column, term string, limit int) ([]T, error) {
	var recs []T
	err := r.db.Where(column+" LIKE ?", "%"+term+"%").Limit(limit).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *Repository[T]) Get(id uint) (*T, error) {
	var rec T
	if err := r.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *Repository[T]) Create(rec *T) error {
	return r.db.Create(rec).Error
}

// Save overwrites the whole row. Callers apply partial updates by
// mutating a record loaded through Get first.
func (r *Repository[T]) Save(rec *T) error {
	return r.db.Save(rec).Error
}

func (r *Repository[T]) Delete(rec *T) error {
	return r.db.Delete(rec).Error
}

// Exists reports whether a row of T with the given id is present. Used
// for foreign-key checks before a write, the schema does not enforce
// them everywhere.
func Exists[T any](db *gorm.DB, id uint) (bool, error) {
	var (
		rec   T
		count int64
	)
	if err := db.Model(&rec).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
