package database

import (
	"database/sql"
	"fmt"
	"log"

	"amavidya/internal/config"
)

// DB wraps the sql.DB connection with its dialect so queries written
// with ? placeholders run unchanged on every supported database.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Initialize opens a database connection based on configuration
func Initialize(cfg *config.Config) (*DB, error) {
	var dialect Dialect
	dialectConfig := DialectConfig{
		Path: cfg.DatabasePath,
		URL:  cfg.DatabaseURL,
	}

	switch cfg.DatabaseType {
	case "sqlite", "sqlite3", "":
		dialect = NewSQLiteDialect()
	case "postgres", "postgresql":
		dialect = NewPostgresDialect()
		if dialectConfig.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for postgres")
		}
	case "mysql":
		dialect = NewMySQLDialect()
		if dialectConfig.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for mysql")
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}

	sqlDB, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := dialect.ConfigureConnection(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to configure database connection: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Connected to %s database", cfg.DatabaseType)

	return &DB{DB: sqlDB, Dialect: dialect}, nil
}

// Query rewrites placeholders for the dialect and runs the query
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.DB.Query(db.Dialect.RewriteQuery(query), args...)
}

// QueryRow rewrites placeholders for the dialect and runs the query
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.DB.QueryRow(db.Dialect.RewriteQuery(query), args...)
}

// Exec rewrites placeholders for the dialect and executes the statement
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.DB.Exec(db.Dialect.RewriteQuery(query), args...)
}

// Begin starts a transaction whose queries go through the same
// placeholder rewriting as the parent connection
func (db *DB) Begin() (*Tx, error) {
	tx, err := db.DB.Begin()
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, dialect: db.Dialect}, nil
}
