package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tperticaro.dev/internal/models"
	"tperticaro.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	base
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler. A nil service answers
// every request with 503.
func NewProjectHandler(b base, ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{base: b, projectService: ps}
}

func (h *ProjectHandler) available(w http.ResponseWriter) bool {
	if h.projectService == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Project catalog unavailable")
		return false
	}
	return true
}

// ListProjects handles GET /api/projects. ?tag= narrows the list the way
// the filter bar does.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		tag = models.FilterAll
	}
	h.respondJSON(w, http.StatusOK, h.projectService.Filter(tag))
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		h.respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	h.respondJSON(w, http.StatusOK, project)
}

// ListTags handles GET /api/tags
func (h *ProjectHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	if !h.available(w) {
		return
	}
	h.respondJSON(w, http.StatusOK, h.projectService.Tags())
}
