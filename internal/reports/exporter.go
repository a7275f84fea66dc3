package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter renders report rows into a downloadable file.
type ReportExporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

// Export returns the file bytes, a filename and the content type.
func (e *reportExporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	if format == FormatXLSX {
		format = FormatExcel
	}

	switch reportType {
	case ReportTypeMembers:
		return e.exportMembersByFormat(format, timestamp, data.Members)
	case ReportTypeAttendance:
		return e.exportAttendanceByFormat(format, timestamp, data.Attendance)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

//// ============================
/// MEMBERS ROSTER EXPORTS
//// ============================

func (e *reportExporter) exportMembersByFormat(format, timestamp string, rows []MemberReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		data, err := e.exportMembersExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("members_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportMembersCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("members_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatPDF:
		data, err := e.exportMembersPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("members_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for members report: %s", format)
	}
}

func (e *reportExporter) exportMembersCSV(rows []MemberReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "First Name", "Other Names", "Last Name", "Sex", "Phone Number", "Hall", "Room", "Programme", "Level", "Date of Birth", "Congregation", "Committee"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.FirstName,
			r.OtherNames,
			r.LastName,
			r.Sex,
			r.PhoneNumber,
			r.Hall,
			r.RoomNumber,
			r.Programme,
			r.Level,
			r.DateOfBirth,
			r.Congregation,
			r.Committee,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *reportExporter) exportMembersExcel(rows []MemberReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Members"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"ID", "First Name", "Other Names", "Last Name", "Sex", "Phone Number", "Hall", "Room", "Programme", "Level", "Date of Birth", "Congregation", "Committee"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.FirstName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.OtherNames)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.LastName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Sex)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.PhoneNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.Hall)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.RoomNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.Programme)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), r.Level)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), r.DateOfBirth)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), r.Congregation)
		f.SetCellValue(sheetName, fmt.Sprintf("M%d", row), r.Committee)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportMembersPDF(rows []MemberReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Members Report")
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{12, 28, 28, 28, 12, 28, 25, 15, 30, 15, 25, 25, 25}
	headers := []string{"ID", "First Name", "Other Names", "Last Name", "Sex", "Phone", "Hall", "Room", "Programme", "Level", "DOB", "Congregation", "Committee"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		values := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.FirstName,
			r.OtherNames,
			r.LastName,
			r.Sex,
			r.PhoneNumber,
			r.Hall,
			r.RoomNumber,
			r.Programme,
			r.Level,
			r.DateOfBirth,
			r.Congregation,
			r.Committee,
		}
		for i, v := range values {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// EVENT ATTENDANCE EXPORTS
//// ============================

func (e *reportExporter) exportAttendanceByFormat(format, timestamp string, rows []AttendanceReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		data, err := e.exportAttendanceExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendance_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportAttendanceCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendance_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatPDF:
		data, err := e.exportAttendancePDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendance_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for attendance report: %s", format)
	}
}

func (e *reportExporter) exportAttendanceCSV(rows []AttendanceReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Event ID", "Event", "Member ID", "First Name", "Other Names", "Last Name", "Phone Number", "Hall", "Programme"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			r.EventName,
			strconv.FormatUint(uint64(r.MemberID), 10),
			r.FirstName,
			r.OtherNames,
			r.LastName,
			r.PhoneNumber,
			r.Hall,
			r.Programme,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *reportExporter) exportAttendanceExcel(rows []AttendanceReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Attendance"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Event ID", "Event", "Member ID", "First Name", "Other Names", "Last Name", "Phone Number", "Hall", "Programme"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.EventID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.EventName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.MemberID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.FirstName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.OtherNames)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.LastName)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.PhoneNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.Hall)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.Programme)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportAttendancePDF(rows []AttendanceReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	title := "Attendance Report"
	if len(rows) > 0 {
		title = fmt.Sprintf("Attendance Report - %s", rows[0].EventName)
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(20)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{20, 45, 22, 35, 35, 35, 35, 30, 35}
	headers := []string{"Event ID", "Event", "Member ID", "First Name", "Other Names", "Last Name", "Phone", "Hall", "Programme"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range rows {
		values := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			r.EventName,
			strconv.FormatUint(uint64(r.MemberID), 10),
			r.FirstName,
			r.OtherNames,
			r.LastName,
			r.PhoneNumber,
			r.Hall,
			r.Programme,
		}
		for i, v := range values {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
