package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrStaleRow is returned when a conditional update matched no row because
// another writer changed it first.
var ErrStaleRow = errors.New("row changed concurrently")

// IsUniqueViolation reports whether err came from a unique index. gorm
// translates it for postgres; the sqlite text is matched for tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
