package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/darshan/catalog/internal/response"
)

// Handler holds HTTP handlers for the catalog endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new catalog Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// createResponse is the body of a successful catalog-write.
type createResponse struct {
	ID      string      `json:"id"`
	Version string      `json:"version"`
	Message string      `json:"message"`
	Item    ItemSummary `json:"item"`
}

// listResponse is the body of a successful catalog-query.
type listResponse struct {
	Items            []Item `json:"items"`
	Count            int    `json:"count"`
	Type             string `json:"type"`
	LastEvaluatedKey string `json:"lastEvaluatedKey,omitempty"`
}

// Create godoc
//
//	@Summary		Create a catalog record
//	@Description	Persists metadata for an uploaded media item. Call after the file has been uploaded via the presigned URL.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRequest	true	"catalog record"
//	@Success		201		{object}	createResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/api/catalog [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Missing required fields: type, title, fileKey")
		return
	}

	summary, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if IsInvalidInput(err) {
			response.BadRequest(w, userMessage(err))
			return
		}
		slog.Error("catalog create failed", "error", err)
		response.InternalError(w)
		return
	}

	response.Created(w, createResponse{
		ID:      summary.ID,
		Version: summary.Version,
		Message: "Catalog item created successfully",
		Item:    *summary,
	})
}

// List godoc
//
//	@Summary		List catalog records
//	@Description	Returns one page of records for a media type, newest first within the page.
//	@Tags			catalog
//	@Produce		json
//	@Param			type				query		string	true	"wallpaper or music"
//	@Param			limit				query		int		false	"page size (default 50)"
//	@Param			lastEvaluatedKey	query		string	false	"opaque continuation token from the previous page"
//	@Success		200					{object}	listResponse
//	@Failure		400					{object}	response.ErrorBody
//	@Failure		500					{object}	response.ErrorBody
//	@Router			/api/catalog [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mediaType := q.Get("type")

	var limit int32
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = int32(n)
	}

	page, err := h.svc.List(r.Context(), mediaType, limit, q.Get("lastEvaluatedKey"))
	if err != nil {
		if IsInvalidInput(err) {
			response.BadRequest(w, userMessage(err))
			return
		}
		slog.Error("catalog list failed", "type", mediaType, "error", err)
		response.InternalError(w)
		return
	}

	response.OK(w, listResponse{
		Items:            page.Items,
		Count:            len(page.Items),
		Type:             mediaType,
		LastEvaluatedKey: page.NextToken,
	})
}
