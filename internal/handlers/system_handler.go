package handlers

import (
	"net/http"
	"runtime"

	"itemstore-backend/internal/config"
	"itemstore-backend/internal/services"
	"itemstore-backend/utils/response"
)

const (
	AppName = "itemstore"
	Version = "2.0.0"
)

type SystemHandler struct {
	cfg  *config.Config
	auth *services.AuthService
}

func NewSystemHandler(cfg *config.Config, auth *services.AuthService) *SystemHandler {
	return &SystemHandler{cfg: cfg, auth: auth}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the itemstore API",
		"status":  "running",
		"version": Version,
		"features": []string{
			"user authentication",
			"item CRUD",
			"file upload",
			"pagination and search",
		},
	})
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":     "healthy",
		"go_version": runtime.Version(),
	})
}

func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	stats, err := h.auth.Stats(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to collect statistics")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"app_name":    AppName,
		"version":     Version,
		"environment": h.cfg.Environment,
		"hostname":    h.cfg.Hostname,
		"go_version":  runtime.Version(),
		"statistics":  stats,
	})
}

// NotFound catches every path no other route claimed.
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	response.NotFoundPath(w, r.URL.Path)
}
