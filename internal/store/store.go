// Package store is the repository layer over ScyllaDB. A Store is constructed
// once in main from an explicit database.DB; handlers receive it by injection.
package store

import (
	"errors"

	"chaicraft_back_end/internal/database"

	"github.com/gocql/gocql"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrInsufficientBalance = errors.New("gift card balance insufficient")
	ErrConcurrentUpdate    = errors.New("concurrent update, retries exhausted")
)

type Store struct {
	db *database.DB
}

func New(db *database.DB) *Store {
	return &Store{db: db}
}

// notFound translates the driver's sentinel so callers never import gocql for
// error checks.
func notFound(err error) error {
	if errors.Is(err, gocql.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
