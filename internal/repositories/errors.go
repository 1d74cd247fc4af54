package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when no row matches the requested id
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is violated
	ErrDuplicate = errors.New("record already exists")
	// ErrInvalidReference is returned when a foreign key points to a missing row
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// MySQL server error numbers
const (
	errDupEntry          = 1062
	errNoReferencedRow   = 1452
	errNoReferencedRowV1 = 1216
)

// mapError translates driver errors into repository sentinels
func mapError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return err
	}
	switch mysqlErr.Number {
	case errDupEntry:
		return ErrDuplicate
	case errNoReferencedRow, errNoReferencedRowV1:
		return ErrInvalidReference
	}
	return err
}
