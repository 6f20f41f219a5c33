package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("record not found")

// isNotFound checks if an error is a gorm record not found error
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
