package timesheet

import (
	"errors"

	timesheeterrors "go-hrms/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// mapRepositoryError surfaces unique violations as a duplicate week: the only unique keys
// written by this workflow guard (employee, week) and (employee, task, week).
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return timesheeterrors.ErrWeekAlreadySubmitted
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return timesheeterrors.ErrWeekAlreadySubmitted
	}
	return err
}
