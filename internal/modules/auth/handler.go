package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/web"
	"github.com/imdhruv9/uttam-printing/pkg/validate"
)

// Handler exposes authentication HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/auth/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondError(w, r, apperr.Validation("Invalid request body"))
		return
	}
	if details := validate.Struct(req); details != nil {
		web.RespondError(w, r, apperr.Validation("Request validation failed", details...))
		return
	}

	resp, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		web.RespondError(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, resp)
}
