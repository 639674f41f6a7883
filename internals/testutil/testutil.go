// file: internals/testutil/testutil.go
// Package testutil abre la base de pruebas y entrega transacciones
// aisladas por test. Sin TEST_POSTGRES_DSN los tests de integración se
// saltan.
package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "academico_backend/internals/databases"
)

var (
	once   sync.Once
	shared *gorm.DB
	openErr error
)

// DB abre (una sola vez) la base de pruebas y aplica las migraciones.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN no definido; se omiten los tests de integración")
	}

	once.Do(func() {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			openErr = err
			return
		}
		if err := database.MigrateAll(db); err != nil {
			openErr = err
			return
		}
		shared = db
	})
	if openErr != nil {
		t.Fatalf("no se pudo abrir la base de pruebas: %v", openErr)
	}
	return shared
}

// Tx entrega una transacción que se revierte al terminar el test.
func Tx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("no se pudo abrir la transacción: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}
