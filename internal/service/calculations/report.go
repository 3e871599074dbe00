package calculations

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-DeadlineService/internal/domain"
)

const reportSheet = "Calculations"

var reportColumns = []string{
	"ID",
	"Starting datetime",
	"Time interval (min)",
	"Expected pickup time",
	"Business hours",
	"Created at",
}

// WriteReport выгружает все записи расчетов в xlsx
func (s *Service) WriteReport(ctx context.Context, out io.Writer) error {
	s.logger.Info("WriteReport: building calculations report")

	calcs, err := s.listRecords(ctx)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("%w: WriteReport - rename sheet: %v", ErrInternal, err)
	}

	if err := s.writeReportHeader(file); err != nil {
		return err
	}

	for i := range calcs {
		if err := s.writeReportRow(file, i+2, &calcs[i]); err != nil {
			return err
		}
	}

	if err := file.Write(out); err != nil {
		return fmt.Errorf("%w: WriteReport - write workbook: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) writeReportHeader(file *excelize.File) error {
	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: writeReportHeader - create style: %v", ErrInternal, err)
	}

	for i, column := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("%w: writeReportHeader - cell name: %v", ErrInternal, err)
		}
		if err := file.SetCellValue(reportSheet, cell, column); err != nil {
			return fmt.Errorf("%w: writeReportHeader - set value: %v", ErrInternal, err)
		}
		if err := file.SetCellStyle(reportSheet, cell, cell, style); err != nil {
			return fmt.Errorf("%w: writeReportHeader - set style: %v", ErrInternal, err)
		}
	}

	return nil
}

func (s *Service) writeReportRow(file *excelize.File, row int, calc *domain.Calculation) error {
	values := []interface{}{
		calc.ID,
		calc.StartingDateTime,
		calc.TimeInterval,
		calc.ExpectedPickupTime,
		calc.ActualBusinessHours,
		calc.CreatedAt.Format(domain.DateTimeFormat),
	}

	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("%w: writeReportRow - cell name: %v", ErrInternal, err)
		}
		if err := file.SetCellValue(reportSheet, cell, value); err != nil {
			return fmt.Errorf("%w: writeReportRow - set value: %v", ErrInternal, err)
		}
	}

	return nil
}
