package reports

import (
	"context"
	"errors"

	"github.com/kdanso/campus-ministry-backend/internal/auditlog"
)

var ErrEventNotFound = errors.New("event not found")

// ReportService loads report rows and coordinates repo + exporter.
type ReportService interface {
	GetMembersReport() ([]MemberReportRow, error)
	ExportMembersReport(ctx context.Context, format string, username *string, ip string) ([]byte, string, string, error)

	GetAttendanceReport(eventID uint) ([]AttendanceReportRow, error)
	ExportAttendanceReport(ctx context.Context, eventID uint, format string, username *string, ip string) ([]byte, string, string, error)
}

type reportService struct {
	repo     *Repository
	exporter ReportExporter
	auditSvc auditlog.Service
}

func NewReportService(repo *Repository, exporter ReportExporter, auditSvc auditlog.Service) ReportService {
	return &reportService{
		repo:     repo,
		exporter: exporter,
		auditSvc: auditSvc,
	}
}

func (s *reportService) GetMembersReport() ([]MemberReportRow, error) {
	return s.repo.MemberRows()
}

func (s *reportService) ExportMembersReport(ctx context.Context, format string, username *string, ip string) ([]byte, string, string, error) {
	rows, err := s.repo.MemberRows()
	if err != nil {
		return nil, "", "", err
	}

	data, filename, contentType, err := s.exporter.Export(ReportTypeMembers, format, ReportData{Members: rows})
	if err != nil {
		return nil, "", "", err
	}

	if s.auditSvc != nil {
		details := map[string]interface{}{
			"report": ReportTypeMembers,
			"format": format,
			"rows":   len(rows),
		}
		s.auditSvc.LogAction(ctx, username, "REPORT_EXPORTED", details, ip, "success")
	}

	return data, filename, contentType, nil
}

func (s *reportService) GetAttendanceReport(eventID uint) ([]AttendanceReportRow, error) {
	exists, err := s.repo.EventExists(eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEventNotFound
	}
	return s.repo.AttendanceRows(eventID)
}

func (s *reportService) ExportAttendanceReport(ctx context.Context, eventID uint, format string, username *string, ip string) ([]byte, string, string, error) {
	rows, err := s.GetAttendanceReport(eventID)
	if err != nil {
		return nil, "", "", err
	}

	data, filename, contentType, err := s.exporter.Export(ReportTypeAttendance, format, ReportData{Attendance: rows})
	if err != nil {
		return nil, "", "", err
	}

	if s.auditSvc != nil {
		details := map[string]interface{}{
			"report":   ReportTypeAttendance,
			"format":   format,
			"event_id": eventID,
			"rows":     len(rows),
		}
		s.auditSvc.LogAction(ctx, username, "REPORT_EXPORTED", details, ip, "success")
	}

	return data, filename, contentType, nil
}
