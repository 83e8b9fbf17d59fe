package repos

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/cyberquiz-backend/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapError translates storage failures into the domain error taxonomy so
// raw constraint names never leak past the repo boundary.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var typed *domain.Error
	if errors.As(err, &typed) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Wrap(domain.CodeNotFound, op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.NewError(domain.CodeConflict, op, "already exists", err)
		case pgForeignKeyViolation:
			return domain.NewError(domain.CodeConflict, op, "still referenced", err)
		}
	}
	return domain.Wrap(domain.CodeStorage, op, err)
}
