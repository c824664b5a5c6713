// Package postgres implements the entity repositories against PostgreSQL
// using parameterized SQL. The UNIQUE and FOREIGN KEY constraints declared
// in schema.go are the authoritative invariant guard; service-level
// pre-checks only exist for friendlier error messages, so every constraint
// violation surfaced here is still mapped to its domain error.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/eventhive/booking-api/internal/core/domain"
)

const (
	maxOpenConns = 25
	maxIdleConns = 5
)

// Config captures the settings for establishing a PostgreSQL connection.
type Config struct {
	DSN string
}

// Connect opens a connection pool and verifies connectivity.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	return db, nil
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// fkConstraint returns the violated foreign-key constraint name, or "".
func fkConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return pqErr.Constraint
	}
	return ""
}

// affectOne enforces the single-row contract on by-id updates and deletes.
// Zero rows is the given not-found error; more than one row means the id
// column is not behaving like a key, which is a data-integrity fault.
func affectOne(res sql.Result, notFound error, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	switch {
	case n == 0:
		return notFound
	case n > 1:
		return fmt.Errorf("%w: %s affected %d rows", domain.ErrIntegrity, op, n)
	}
	return nil
}
