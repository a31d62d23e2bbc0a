package store

import (
	"errors"
	"fmt"
	"net"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
	"github.com/ougirez/rtrw/internal/pkg/constants"
)

const (
	tableUsers      = "users"
	tableBusinesses = "umkm"
	tableFinance    = "keuangan"
	tableLetters    = "surat"
	tableResidents  = "warga"

	pgUniqueViolation = "23505"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", constants.ErrConflict, pgErr.ConstraintName)
	}
	if unreachable(err) {
		return &unavailableError{cause: err}
	}
	return err
}

// unreachable reports errors that mean the database could not be talked to
// at all, as opposed to a rejected statement.
func unreachable(err error) bool {
	var (
		connErr *pgconn.ConnectError
		opErr   *net.OpError
	)
	return errors.As(err, &connErr) ||
		errors.As(err, &opErr) ||
		pgconn.Timeout(err) ||
		errors.Is(err, puddle.ErrClosedPool)
}

// unavailableError hides the driver message, which names the DSN host,
// user and database, behind ErrStoreUnavailable. The cause stays
// reachable through errors.As.
type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string {
	return constants.ErrStoreUnavailable.Error()
}

func (e *unavailableError) Unwrap() []error {
	return []error{constants.ErrStoreUnavailable, e.cause}
}

// builder returns a statement builder using $n placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func returning(columns []string) string {
	res := "RETURNING "
	for i, c := range columns {
		if i > 0 {
			res += ", "
		}
		res += c
	}
	return res
}
