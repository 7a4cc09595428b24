package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the review history database. dbType is "sqlite" or
// "postgres"; for sqlite dsn is the database file path, for postgres a
// connection string.
func Connect(dbType, dsn string) (*sqlx.DB, error) {
	switch dbType {
	case "", "sqlite":
		return connectSQLite(dsn)
	case "postgres":
		return connectPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

func connectSQLite(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeSchema(db, "sqlite"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func connectPostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	if err := initializeSchema(db, "postgres"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeSchema creates the reviews table if it doesn't exist
func initializeSchema(db *sqlx.DB, dbType string) error {
	var ddl string
	if dbType == "sqlite" {
		ddl = `
			CREATE TABLE IF NOT EXISTS reviews (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				category TEXT NOT NULL,
				item_key TEXT NOT NULL,
				quality INTEGER NOT NULL,
				correct BOOLEAN NOT NULL,
				reviewed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	} else {
		ddl = `
			CREATE TABLE IF NOT EXISTS reviews (
				id BIGSERIAL PRIMARY KEY,
				category TEXT NOT NULL,
				item_key TEXT NOT NULL,
				quality INTEGER NOT NULL,
				correct BOOLEAN NOT NULL,
				reviewed_at TIMESTAMP DEFAULT NOW()
			)
		`
	}
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create reviews table: %v", err)
	}

	_, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_reviews_item ON reviews (category, item_key)`)
	if err != nil {
		return fmt.Errorf("failed to create reviews index: %v", err)
	}
	return nil
}
