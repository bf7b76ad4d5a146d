package handler

import (
	"net/http"
	"wings_inventory/internal/app/service"
	"wings_inventory/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// UserHandler serves roster management for the dashboard.
type UserHandler struct {
	authService *service.AuthService
	log         logrus.FieldLogger
}

func NewUserHandler(authService *service.AuthService, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{authService: authService, log: log}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.listUsers)
	r.Post("/addUser", h.addUser)
	r.Put("/updateUser", h.updateUser)
	r.Delete("/deleteUser", h.deleteUser)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) addUser(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.authService.AddUser(r.Context(), req); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithMessage(w, "User added successfully")
}

func (h *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.authService.UpdateUser(r.Context(), req); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithMessage(w, "User updated successfully")
}

func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req service.DeleteUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.authService.DeleteUser(r.Context(), req); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	common.RespondWithMessage(w, "User deleted successfully")
}
