package types

import "errors"

// Configuration errors cover invalid user input: unknown report types,
// malformed filters and unreadable config files.
var (
	ErrConfigNotFound      = errors.New("configuration file not found")
	ErrInvalidConfigFormat = errors.New("invalid configuration format")
	ErrUnknownReportType   = errors.New("unknown report type")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDateRange    = errors.New("end date is before start date")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
)

// Schema errors cover result sets that do not carry the columns a
// report consumer needs.
var (
	ErrAmountColumnMissing = errors.New("no amount column in result set")
	ErrColumnMissing       = errors.New("column not present in result set")
	ErrColumnNotNumeric    = errors.New("column is not numeric")
)
