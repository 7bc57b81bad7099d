// Package store is the persistence gateway: one set of CRUD methods per
// entity over a single gorm connection. Deletes never cascade; referential
// consequences are the caller's problem, as they are in the schema.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/enotalexnot/ztk-catalog/internal/models"
)

// ErrNotFound is returned when an id, slug or key resolves to no row.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for migration and test setup.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(models.All()...)
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// checkAffected maps a zero-row update/delete to ErrNotFound so handlers
// can answer 404 without a separate existence query.
func checkAffected(tx *gorm.DB) error {
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// updateRows applies a partial column update. An empty field set is a
// no-op that still reports ErrNotFound for a missing row, so PUT with an
// empty body behaves the same as any other partial update.
func (s *Store) updateRows(model any, query string, arg any, fields map[string]any) error {
	if len(fields) == 0 {
		var n int64
		if err := s.db.Model(model).Where(query, arg).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}
	return checkAffected(s.db.Model(model).Where(query, arg).Updates(fields))
}
