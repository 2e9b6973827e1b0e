package repository

import (
	"errors"

	"github.com/amirasaad/aliasregistry/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors, walking the
// error chain since GORM wraps driver errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Delete(&Alias{}, "alias = ?", name).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// WrapConflict is WrapError for inserts guarded by a unique key: a duplicate
// is reported as the given conflict instead of the generic ErrAlreadyExists.
func WrapConflict(op func() error, conflict error) error {
	err := WrapError(op)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return conflict
	}
	return err
}
