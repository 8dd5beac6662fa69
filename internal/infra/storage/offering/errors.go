package offering

import "errors"

var (
	// ErrOfferingNotFound is returned when the offering does not exist
	ErrOfferingNotFound = errors.New("offering.repository: offering not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("offering.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("offering.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("offering.repository: failed to scan row")
)
