package payroll

import "errors"

var (
	ErrHoursOutOfRange     = errors.New("part-time hours exceed period limit")
	ErrUnknownEmployeeType = errors.New("unknown employee type")
)
