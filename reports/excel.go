// Package reports renders fetched report data into local files; the
// client-side counterpart of the server's CSV/PDF exports.
package reports

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
)

var reportHeader = []string{
	"USN", "Name", "Attendance %", "Avg Attentiveness", "Classes Held", "Classes Attended",
}

// WriteClassReportXLSX renders a class report as a single-sheet workbook.
func WriteClassReportXLSX(w io.Writer, cls state.Class, rows []state.StudentReport) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	sheet := "Report"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return errors.Wrap(err, "reports: renaming sheet")
	}

	title := fmt.Sprintf("%s - %s (semester %d)", cls.Subject, cls.ClassName, cls.Semester)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return errors.Wrap(err, "reports: writing title")
	}

	for col, name := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return errors.Wrap(err, "reports: header cell")
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return errors.Wrap(err, "reports: writing header")
		}
	}

	for i, r := range rows {
		values := []interface{}{
			r.StudentUSN,
			r.StudentName,
			r.AttendancePercentage,
			r.AverageAttentiveness,
			r.TotalClasses,
			r.PresentClasses,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+3)
			if err != nil {
				return errors.Wrap(err, "reports: row cell")
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return errors.Wrap(err, "reports: writing row")
			}
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "reports: writing workbook")
	}
	return nil
}
