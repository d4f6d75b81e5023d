package database

import (
	"errors"
	"fmt"

	"pullup-club/pkg/errutil"

	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

// Translate maps gorm and driver errors onto the service error taxonomy.
// Errors that already carry a kind pass through unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errutil.KindOf(err) != "", errors.Is(err, ErrDuplicate):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errutil.NotFound("record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errutil.InvalidTransition("change would violate a ledger constraint", "")
	default:
		return errutil.StoreUnavailable(err)
	}
}
