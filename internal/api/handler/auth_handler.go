package handler

import (
	"net/http"
	"wings_inventory/internal/app/service"
	"wings_inventory/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authService *service.AuthService
	log         logrus.FieldLogger
}

func NewAuthHandler(authService *service.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.authService.Register(r.Context(), req); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithMessage(w, "Registration successful")
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	h.log.WithField("user_id", user.ID).Info("user logged in")
	common.RespondWithMessage(w, "Login successful")
}
