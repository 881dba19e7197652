// Package sqlite is the embedded Record Store driver. It implements the
// domain repositories on top of gorm so the service runs without a
// PostgreSQL server.
package sqlite

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"gorm.io/gorm"
)

// Migrate creates the Record Store tables if they do not exist.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&clientRow{},
		&employeeRow{},
		&attendanceRow{},
		&userRow{},
		&refreshTokenRow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate sqlite record store: %w", err)
	}
	return nil
}

type txKey struct{}

// conn returns the transaction stored in ctx, or db.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

type transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) database.Transactor {
	return &transactor{db: db}
}

// WithinTransaction implements database.Transactor.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
