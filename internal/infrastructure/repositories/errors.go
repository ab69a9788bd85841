package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	domainerrors "orderdesk.backend/internal/domain/errors"
)

// postgres error classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps storage-layer integrity failures onto the domain
// error taxonomy: unique violations become ErrAlreadyExists, foreign
// key and check violations become ErrInvalidInput. Anything else is
// returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrAlreadyExists
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return domainerrors.ErrAlreadyExists
		case pgForeignKeyViolation, pgCheckViolation:
			return domainerrors.ErrInvalidInput
		}
		return err
	}

	// sqlite in tests reports constraint failures by message only
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value"):
		return domainerrors.ErrAlreadyExists
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"):
		return domainerrors.ErrInvalidInput
	}

	return err
}
