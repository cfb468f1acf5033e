// Package dbtest opens throwaway sqlite databases carrying the questoes and
// usuarios tables.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE questoes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		enunciado TEXT NOT NULL,
		disciplina TEXT NOT NULL,
		tema TEXT NOT NULL,
		nivel TEXT NOT NULL
	)`,
	`CREATE TABLE usuarios (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		email TEXT NOT NULL,
		senha TEXT NOT NULL
	)`,
}

// Open returns an in-memory database with the schema applied. A single
// connection is kept so every statement sees the same memory database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// OpenBroken returns a database whose connection is already closed, so every
// statement fails the way a lost connection would.
func OpenBroken(t *testing.T) *gorm.DB {
	t.Helper()

	db := Open(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return db
}
