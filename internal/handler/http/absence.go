package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madrasahq/school-hr-backend/internal/domain/absence"
	"github.com/madrasahq/school-hr-backend/internal/handler/http/response"
)

type AbsenceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.Service
}

func NewAbsenceHandler(absenceService absence.Service) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Register implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var createReq absence.CreateRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Register absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.absenceService.Register(r.Context(), createReq)
	if err != nil {
		slog.Error("Register absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record registered successfully", rec)
}

// Update implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq absence.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.absenceService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record updated successfully", rec)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.absenceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted successfully", nil)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.absenceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recs)
}

// ListByEmployee implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	recs, err := h.absenceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recs)
}

// EmployeeStats implements AbsenceHandler.
func (h *AbsenceHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	stats, err := h.absenceService.EmployeeStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
