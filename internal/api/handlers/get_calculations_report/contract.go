package get_calculations_report

import (
	"context"
	"io"
)

type CalculationService interface {
	WriteReport(ctx context.Context, out io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
