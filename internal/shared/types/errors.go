package types

import "errors"

var (
	ErrNoSources             = errors.New("no inventory or transaction sources configured")
	ErrBothSourcesFailed     = errors.New("both inventory and transaction sources failed")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange          = errors.New("start date is after end date")
	ErrUnsupportedFormat     = errors.New("unsupported record file format")
	ErrUnsupportedReportType = errors.New("unsupported report type")
	ErrUnsupportedSource     = errors.New("unsupported source location")
	ErrUnsupportedPeriod     = errors.New("unsupported period, expected day, week, month or year")
	ErrNoSnapshot            = errors.New("records have not been loaded yet")
)
