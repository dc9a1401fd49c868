package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/madrasahq/school-hr-backend/internal/domain/report"
	"github.com/madrasahq/school-hr-backend/internal/handler/http/response"
	"github.com/madrasahq/school-hr-backend/internal/pkg/excel"
	"github.com/madrasahq/school-hr-backend/internal/pkg/pdf"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	AllEmployees(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

var attendanceHeaders = []string{
	"Weekday", "Date", "Total Employees", "Present", "Absent", "On Leave", "Absence Rate %",
}

var rosterHeaders = []string{
	"Full Name", "Teacher Code", "National ID", "Birth Date", "Specialization",
	"Teaching Subject", "Phone Number", "Address", "Marital Status",
}

// Daily implements ReportHandler.
func (h *ReportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		Date:         r.URL.Query().Get("date"),
		DelegatedIn:  queryInt(r, "delegated_in"),
		DelegatedOut: queryInt(r, "delegated_out"),
	}

	rows, err := h.reportService.Daily(r.Context(), req)
	if err != nil {
		slog.Error("Daily report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.renderAttendance(w, r, "daily-report", "Daily Attendance Report", rows)
}

// Weekly implements ReportHandler.
func (h *ReportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Weekly(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		slog.Error("Weekly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.renderAttendance(w, r, "weekly-report", "Weekly Attendance Report", rows)
}

// Range implements ReportHandler.
func (h *ReportHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	req := report.RangeReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	rows, err := h.reportService.Range(r.Context(), req)
	if err != nil {
		slog.Error("Range report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.renderAttendance(w, r, "range-report", "Attendance Report", rows)
}

// AllEmployees implements ReportHandler.
func (h *ReportHandlerImpl) AllEmployees(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.AllEmployees(r.Context())
	if err != nil {
		slog.Error("Roster report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.FullName, row.TeacherCode, row.NationalID, row.BirthDate,
			row.Specialization, row.TeachingSubject, row.PhoneNumber,
			row.Address, row.MaritalStatus,
		})
	}

	h.render(w, r, "employees-report", "All Employees", rosterHeaders, cells, rows)
}

func (h *ReportHandlerImpl) renderAttendance(w http.ResponseWriter, r *http.Request, filename, title string, rows []report.ReportRow) {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Weekday, row.Date,
			strconv.Itoa(row.TotalEmployees),
			strconv.Itoa(row.Present),
			strconv.Itoa(row.Absent),
			strconv.Itoa(row.OnLeave),
			strconv.Itoa(row.AbsenceRatePercent),
		})
	}
	h.render(w, r, filename, title, attendanceHeaders, cells, rows)
}

// render writes the report in the requested ?format=: json (default), xlsx
// or pdf.
func (h *ReportHandlerImpl) render(w http.ResponseWriter, r *http.Request, filename, title string, headers []string, cells [][]string, payload interface{}) {
	switch r.URL.Query().Get("format") {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
		if err := excel.WriteWorkbook(w, []excel.Sheet{{Name: title, Headers: headers, Rows: cells}}); err != nil {
			slog.Error("Report xlsx export error", "error", err)
		}
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
		if err := pdf.WriteTable(w, title, headers, cells); err != nil {
			slog.Error("Report pdf export error", "error", err)
		}
	default:
		response.Success(w, payload)
	}
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
