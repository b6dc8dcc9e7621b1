package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateUser indicates a unique-key collision on the users table.
var ErrDuplicateUser = errors.New("user with that email already exists")

// isDuplicateEntry reports whether err is a MySQL duplicate-entry error
// (error number 1062).
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
