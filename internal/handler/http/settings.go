package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/madrasahq/school-hr-backend/internal/domain/settings"
	"github.com/madrasahq/school-hr-backend/internal/handler/http/response"
)

// maxUploadSize bounds logo and backup uploads.
const maxUploadSize = 10 << 20

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	UploadLogo(w http.ResponseWriter, r *http.Request)
	Backup(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
	ClearData(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

// Save implements SettingsHandler.
func (h *SettingsHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq settings.SaveSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings saved successfully", cfg)
}

// UploadLogo implements SettingsHandler.
func (h *SettingsHandlerImpl) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		response.BadRequest(w, "Missing logo upload", nil)
		return
	}
	defer file.Close()

	url, err := h.settingsService.UploadLogo(r.Context(), file, header)
	if err != nil {
		slog.Error("Upload logo service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logo uploaded successfully", map[string]string{"logo_url": url})
}

// Backup implements SettingsHandler. Streams a three-sheet xlsx workbook.
func (h *SettingsHandlerImpl) Backup(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("backup-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.settingsService.Backup(r.Context(), w); err != nil {
		slog.Error("Backup service error", "error", err)
	}
}

// Restore implements SettingsHandler.
func (h *SettingsHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing backup upload", nil)
		return
	}
	defer file.Close()

	result, err := h.settingsService.Restore(r.Context(), file)
	if err != nil {
		slog.Error("Restore service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Restore completed", result)
}

// ClearData implements SettingsHandler.
func (h *SettingsHandlerImpl) ClearData(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsService.ClearData(r.Context()); err != nil {
		slog.Error("Clear data service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All data cleared", nil)
}
