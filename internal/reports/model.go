package reports

// Report types supported by the export endpoints.
const (
	ReportTypeMembers    = "members"
	ReportTypeAttendance = "attendance"
)

// Export formats. "xlsx" is accepted as an alias for FormatExcel.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatXLSX  = "xlsx"
	FormatPDF   = "pdf"
)

// MemberReportRow is one line of the members roster report. Lookup
// references are already resolved to their display names.
type MemberReportRow struct {
	ID           uint
	FirstName    string
	OtherNames   string
	LastName     string
	Sex          string
	PhoneNumber  string
	Hall         string
	RoomNumber   string
	Programme    string
	Level        string
	DateOfBirth  string
	Congregation string
	Committee    string
}

// AttendanceReportRow is one attendee of a given event.
type AttendanceReportRow struct {
	EventID     uint
	EventName   string
	MemberID    uint
	FirstName   string
	OtherNames  string
	LastName    string
	PhoneNumber string
	Hall        string
	Programme   string
}

// ReportData carries whatever rows the requested report needs.
type ReportData struct {
	Members    []MemberReportRow
	Attendance []AttendanceReportRow
}
