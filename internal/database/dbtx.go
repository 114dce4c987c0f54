package database

import "database/sql"

// DBTX is the subset of database operations shared by *DB and *Tx.
// Repositories accept it so the same code runs inside and outside
// transactions.
type DBTX interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// Tx wraps sql.Tx with dialect-aware placeholder rewriting
type Tx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *Tx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return t.tx.Query(t.dialect.RewriteQuery(query), args...)
}

func (t *Tx) QueryRow(query string, args ...interface{}) *sql.Row {
	return t.tx.QueryRow(t.dialect.RewriteQuery(query), args...)
}

func (t *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	return t.tx.Exec(t.dialect.RewriteQuery(query), args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
