package upload

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/darshan/catalog/internal/response"
)

// Handler holds the HTTP handler for upload-URL issuance.
type Handler struct {
	svc *Service
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type issueRequest struct {
	ContentType string `json:"contentType"`
	FileExt     string `json:"fileExt"`
	Type        string `json:"type"`
}

// Issue godoc
//
//	@Summary		Issue a presigned upload URL
//	@Description	Returns a time-limited PUT URL scoped to a fresh object key and the supplied content type. Accepts a JSON body on POST or query parameters on GET.
//	@Tags			upload
//	@Accept			json
//	@Produce		json
//	@Param			request	body		issueRequest	false	"upload parameters (POST)"
//	@Param			contentType	query	string			false	"MIME type (GET)"
//	@Param			fileExt		query	string			false	"file extension (GET)"
//	@Param			type		query	string			false	"wallpaper or music (GET)"
//	@Success		200		{object}	Target
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/api/upload-url [get]
//	@Router			/api/upload-url [post]
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest

	if r.Method == http.MethodGet {
		q := r.URL.Query()
		req = issueRequest{
			ContentType: q.Get("contentType"),
			FileExt:     q.Get("fileExt"),
			Type:        q.Get("type"),
		}
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Missing required fields: contentType, fileExt, type")
		return
	}

	target, err := h.svc.Issue(r.Context(), req.ContentType, req.FileExt, req.Type)
	if err != nil {
		if IsInvalidInput(err) {
			response.BadRequest(w, userMessage(err))
			return
		}
		slog.Error("upload url issuance failed", "error", err)
		response.InternalError(w)
		return
	}

	response.OK(w, target)
}
