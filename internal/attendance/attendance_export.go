package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"

	exportSheet = "Attendance"
)

var exportHeader = []string{
	"Date",
	"Employee ID",
	"Name",
	"Email",
	"Department",
	"Check In",
	"Check Out",
	"Total Hours",
	"Status",
}

func exportRow(a Attendance, loc *time.Location) []string {
	var code, name, email, dept string
	if a.Employee != nil {
		code = a.Employee.EmployeeCode
		name = a.Employee.FullName
		email = a.Employee.Email
		dept = a.Employee.Department
	}

	return []string{
		FormatDate(a.AttendanceDate, loc),
		code,
		name,
		email,
		dept,
		formatTimestamp(a.ClockIn, loc),
		formatTimestamp(a.ClockOut, loc),
		strconv.FormatFloat(storedHours(a), 'f', -1, 64),
		a.Status.String(),
	}
}

func formatTimestamp(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(zone(loc)).Format(time.RFC3339)
}

// WriteCSV writes one header line and one line per record.
func WriteCSV(w io.Writer, records []Attendance, loc *time.Location) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(exportRow(r, loc)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as WriteCSV into a single-sheet workbook.
func WriteXLSX(w io.Writer, records []Attendance, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", toCells(exportHeader)); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := toCells(exportRow(r, loc))
		// keep hours numeric so spreadsheet sums work
		row[7] = storedHours(r)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
