package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/service"
)

type RecordHandler struct {
	recordService *service.RecordService
	logger        *zap.Logger
}

func NewRecordHandler(recordService *service.RecordService, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{recordService: recordService, logger: logger}
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	databaseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid page ID")
		return
	}

	records, err := h.recordService.List(r.Context(), databaseID)
	if err != nil {
		h.logger.Error("list records failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if records == nil {
		records = []domain.Record{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	databaseID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid page ID")
		return
	}

	var input service.CreateRecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	record, err := h.recordService.Create(r.Context(), databaseID, input.Data)
	if err != nil {
		h.logger.Error("create record failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid record ID")
		return
	}

	var input service.CreateRecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	record, err := h.recordService.Update(r.Context(), recordID, input.Data)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
		} else {
			h.logger.Error("update record failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid record ID")
		return
	}

	if err := h.recordService.Delete(r.Context(), recordID); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Record not found")
		} else {
			h.logger.Error("delete record failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
