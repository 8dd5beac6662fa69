package festival

import "errors"

var (
	// ErrFestivalNotFound is returned when the festival does not exist
	ErrFestivalNotFound = errors.New("festival.repository: festival not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("festival.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("festival.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("festival.repository: failed to scan row")
)
