package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danilom/inkbase/internal/domain"
	"github.com/danilom/inkbase/internal/service"
	"github.com/danilom/inkbase/internal/transport/http/middleware"
	"github.com/danilom/inkbase/pkg/validator"
)

type PageHandler struct {
	pageService *service.PageService
	logger      *zap.Logger
}

func NewPageHandler(pageService *service.PageService, logger *zap.Logger) *PageHandler {
	return &PageHandler{pageService: pageService, logger: logger}
}

func (h *PageHandler) ListRoots(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid workspace ID")
		return
	}

	pages, err := h.pageService.ListRoots(r.Context(), workspaceID)
	if err != nil {
		h.logger.Error("list pages failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if pages == nil {
		pages = []domain.Page{}
	}

	writeJSON(w, http.StatusOK, pages)
}

func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	workspaceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid workspace ID")
		return
	}

	var input service.CreatePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePage(input.Title, input.Type); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	page, err := h.pageService.Create(r.Context(), workspaceID, userID, input)
	if err != nil {
		if errors.Is(err, service.ErrParentInvalid) {
			writeError(w, http.StatusBadRequest, "INVALID_PARENT", "Parent page is invalid")
		} else {
			h.logger.Error("create page failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, page)
}

func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	pageID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid page ID")
		return
	}

	page, err := h.pageService.Get(r.Context(), pageID)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Page not found")
		} else {
			h.logger.Error("get page failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	pageID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid page ID")
		return
	}

	var input service.UpdatePageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	page, err := h.pageService.Update(r.Context(), pageID, input)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Page not found")
		} else {
			h.logger.Error("update page failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pageID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid page ID")
		return
	}

	if err := h.pageService.Delete(r.Context(), pageID); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Page not found")
		} else {
			h.logger.Error("delete page failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
