package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Sentinel errors returned by the service layer. Controllers translate these
// into HTTP responses; anything not in this list is treated as an internal
// storage failure.
var (
	ErrInvalidDateFormat     = errors.New("invalid_date_format")
	ErrInvalidDateRange      = errors.New("invalid_date_range")
	ErrRoomCreationFailed    = errors.New("room_creation_failed")
	ErrUsernameTaken         = errors.New("username_taken")
	ErrEmailTaken            = errors.New("email_taken")
	ErrSelfDeletionForbidden = errors.New("self_deletion_forbidden")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrNotFound              = errors.New("not_found")
)

const mysqlDupEntry = 1062

// isDuplicateKey reports whether err comes from a unique-constraint violation.
// gorm's TranslateError covers most drivers; the mysql error number and the
// string check cover raw driver errors that slip through untranslated.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// notFoundOr maps gorm's record-not-found onto the service sentinel and passes
// everything else through.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
