package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/web"
)

// Handler exposes contact HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterPublicRoutes mounts the unauthenticated submission endpoint.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/api/contact", h.submit)
}

// RegisterAdminRoutes mounts the inbox listing endpoints. The caller wraps
// them with the admin guard.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/contact", func(r chi.Router) {
		r.Get("/", h.listAll)
		r.Get("/by-email", h.listByEmail)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperr.Validation("Invalid request body"))
		return
	}
	resp, err := h.service.Submit(r.Context(), req)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	web.Respond(w, http.StatusCreated, resp)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListAll(r.Context(), web.PageFromQuery(r))
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, page)
}

func (h *Handler) listByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		web.RespondError(w, r, apperr.Validation("Query parameter 'email' is required"))
		return
	}
	page, err := h.service.ListByEmail(r.Context(), email, web.PageFromQuery(r))
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, page)
}
