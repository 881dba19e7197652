package report

import "errors"

var (
	ErrReportGeneration = errors.New("failed to generate report")
)
