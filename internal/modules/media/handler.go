package media

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/web"
)

// 10 MB cap on a single upload.
const maxUploadBytes = 10 << 20

// Handler exposes the upload endpoint and serves stored files.
type Handler struct{ storage *Storage }

func NewHandler(storage *Storage) *Handler { return &Handler{storage: storage} }

// RegisterAdminRoutes mounts the upload endpoint. The caller wraps it with
// the admin guard.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/media/upload", h.upload)
}

// RegisterStatic serves stored files back under /uploads/.
func (h *Handler) RegisterStatic(r chi.Router) {
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.storage.Root())))
	r.Get("/uploads/*", fs.ServeHTTP)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		web.RespondError(w, r, apperr.Validation("Unable to parse multipart form"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		web.RespondError(w, r, apperr.Validation("Missing 'file' in form data"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		web.RespondError(w, r, apperr.Wrap(apperr.KindFileStorage, "Could not read uploaded file", err))
		return
	}

	stored, err := h.storage.Store(header.Filename, content)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, stored)
}
