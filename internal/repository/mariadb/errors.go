package mariadb

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/fhuszti/videos-ms-go/internal/port"
)

const dupEntryErrNo = 1062

// mapErr translates driver-level failures into the repository sentinels the
// usecases match on.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return port.ErrNotFound
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntryErrNo {
		return port.ErrDuplicate
	}
	return err
}
