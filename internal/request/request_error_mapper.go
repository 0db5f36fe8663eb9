package request

import (
	"errors"

	requesterrors "go-hrms/internal/request/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrRequestNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return requesterrors.ErrRequestConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return requesterrors.ErrRequestConflict
	}
	return err
}
