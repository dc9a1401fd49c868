package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madrasahq/school-hr-backend/internal/domain/employee"
	"github.com/madrasahq/school-hr-backend/internal/handler/http/response"
	"github.com/madrasahq/school-hr-backend/internal/pkg/excel"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employeeService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// List implements EmployeeHandler. An optional ?search= filters by name,
// national ID or teacher code.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	var (
		emps []employee.EmployeeResponse
		err  error
	)
	if search != "" {
		emps, err = h.employeeService.Search(r.Context(), search)
	} else {
		emps, err = h.employeeService.List(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emps)
}

// Import implements EmployeeHandler. Accepts an xlsx upload whose first
// sheet carries the roster, one employee per row.
func (h *EmployeeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	sheets, err := excel.ReadWorkbook(file)
	if err != nil {
		slog.Error("Import workbook read error", "error", err)
		response.BadRequest(w, "Invalid workbook", nil)
		return
	}

	rows := importRows(sheets)
	result, err := h.employeeService.Import(r.Context(), rows)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}

// importRows flattens the first non-empty sheet into create requests.
// Expected column order: full name, teacher code, national ID, birth date,
// specialization, teaching subject, phone number, address, marital status.
func importRows(sheets map[string]excel.Sheet) []employee.CreateEmployeeRequest {
	var rows []employee.CreateEmployeeRequest
	for _, sheet := range sheets {
		if len(sheet.Rows) == 0 {
			continue
		}
		for _, row := range sheet.Rows {
			for len(row) < 9 {
				row = append(row, "")
			}
			rows = append(rows, employee.CreateEmployeeRequest{
				FullName:        row[0],
				TeacherCode:     optionalCell(row[1]),
				NationalID:      row[2],
				BirthDate:       optionalCell(row[3]),
				Specialization:  optionalCell(row[4]),
				TeachingSubject: optionalCell(row[5]),
				PhoneNumber:     optionalCell(row[6]),
				Address:         optionalCell(row[7]),
				MaritalStatus:   optionalCell(row[8]),
			})
		}
		break
	}
	return rows
}

func optionalCell(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
