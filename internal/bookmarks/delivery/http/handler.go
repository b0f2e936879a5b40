package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"markfy/internal/bookmarks/domain"
	"markfy/internal/bookmarks/usecase"
	"markfy/pkg/apierror"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bookmark operations
type Handler struct {
	service *usecase.BookmarkService
	logger  *zap.Logger
	db      *sql.DB
	rdb     *redis.Client // may be nil when Redis is not configured
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.BookmarkService, logger *zap.Logger, db *sql.DB, rdb *redis.Client) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		db:      db,
		rdb:     rdb,
	}
}

// CreateLinkRequest is the request body for creating a bookmark
type CreateLinkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	IsFavorite  bool   `json:"isFavorite"`
}

// UpdateLinkRequest is the request body for a partial bookmark update
type UpdateLinkRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	IsFavorite  *bool   `json:"isFavorite"`
}

// DeleteResponse confirms a successful deletion
type DeleteResponse struct {
	Message string `json:"message"`
}

// ListLinks handles GET /api/links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetLinks(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListFavoriteLinks handles GET /api/links/favorites
func (h *Handler) ListFavoriteLinks(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetFavoriteLinks(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CreateLink handles POST /api/links
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apierror.New("Invalid request body"))
		return
	}

	result, err := h.service.CreateLink(r.Context(), domain.CreateInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// GetLink handles GET /api/links/{id}
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.GetLinkByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, apierror.New("Bookmark not found"))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// UpdateLink handles PATCH /api/links/{id}
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apierror.New("Invalid request body"))
		return
	}

	result, err := h.service.UpdateLink(r.Context(), id, domain.UpdateInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteLink handles DELETE /api/links/{id}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteLink(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Message: "Bookmark deleted successfully"})
}

// ToggleFavorite handles PATCH /api/links/{id}/favorite
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.ToggleFavorite(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// parseQuery validates the listing query parameters, writing a 400 with
// field details on failure.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (domain.Query, bool) {
	params := r.URL.Query()
	q, err := domain.ParseQuery(
		params.Get("page"),
		params.Get("limit"),
		params.Get("search"),
		params.Get("sort"),
	)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			writeError(w, http.StatusBadRequest, apierror.NewValidation("Invalid query parameters", fieldErrors(ve)))
			return domain.Query{}, false
		}
		writeError(w, http.StatusBadRequest, apierror.New("Invalid query parameters"))
		return domain.Query{}, false
	}
	return q, true
}

// writeServiceError maps domain errors onto the API error contract.
// Unexpected errors are logged and surface as a generic 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		writeError(w, http.StatusBadRequest, apierror.NewValidation("Invalid request body", fieldErrors(ve)))
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, apierror.New("Bookmark not found"))
	case errors.Is(err, domain.ErrDuplicateURL):
		writeError(w, http.StatusConflict, apierror.New("A bookmark with this URL already exists"))
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}

func fieldErrors(ve *domain.ValidationError) []apierror.FieldError {
	details := make([]apierror.FieldError, len(ve.Fields))
	for i, f := range ve.Fields {
		details[i] = apierror.FieldError{Field: f.Field, Message: f.Message}
	}
	return details
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Reason: "database unavailable: " + err.Error(),
		})
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Reason: "redis unavailable: " + err.Error(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}
