package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/madrasahq/school-hr-backend/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeReportService struct {
	report.Service

	lastDaily report.DailyReportRequest
	rows      []report.ReportRow
	roster    []report.RosterRow
}

func (f *fakeReportService) Daily(ctx context.Context, req report.DailyReportRequest) ([]report.ReportRow, error) {
	f.lastDaily = req
	return f.rows, nil
}

func (f *fakeReportService) AllEmployees(ctx context.Context) ([]report.RosterRow, error) {
	return f.roster, nil
}

func TestDailyReportHandlerJSON(t *testing.T) {
	svc := &fakeReportService{rows: []report.ReportRow{
		{Weekday: "Monday", Date: "2024-03-11", TotalEmployees: 10, Present: 9, Absent: 1, AbsenceRatePercent: 10},
	}}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily?date=2024-03-11&delegated_in=2&delegated_out=1", nil)
	rec := httptest.NewRecorder()
	handler.Daily(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-03-11", svc.lastDaily.Date)
	assert.Equal(t, 2, svc.lastDaily.DelegatedIn)
	assert.Equal(t, 1, svc.lastDaily.DelegatedOut)

	var body struct {
		Success bool               `json:"success"`
		Data    []report.ReportRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Monday", body.Data[0].Weekday)
	assert.Equal(t, 10, body.Data[0].AbsenceRatePercent)
}

func TestDailyReportHandlerIgnoresBadDelegationParams(t *testing.T) {
	svc := &fakeReportService{}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/daily?delegated_in=abc", nil)
	rec := httptest.NewRecorder()
	handler.Daily(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.lastDaily.DelegatedIn)
}

func TestRosterReportHandlerXLSX(t *testing.T) {
	svc := &fakeReportService{roster: []report.RosterRow{
		{FullName: "Ahmed Al-Sayed", TeacherCode: "T-0001", NationalID: "1234567890"},
	}}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/employees?format=xlsx", nil)
	rec := httptest.NewRecorder()
	handler.AllEmployees(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "employees-report.xlsx")

	wb, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("All Employees")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Full Name", rows[0][0])
	assert.Equal(t, "Ahmed Al-Sayed", rows[1][0])
}

func TestRosterReportHandlerPDF(t *testing.T) {
	svc := &fakeReportService{roster: []report.RosterRow{{FullName: "Mona Hassan"}}}
	handler := NewReportHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/employees?format=pdf", nil)
	rec := httptest.NewRecorder()
	handler.AllEmployees(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, rec.Body.Len() > 0)
}
