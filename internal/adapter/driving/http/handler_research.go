package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// ListResearchProjects returns all research projects in display order.
func (h *Handler) ListResearchProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.researchStore.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list research projects", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ResearchProjectResponse, 0, len(projects))
	for _, project := range projects {
		resp = append(resp, toResearchProjectResponse(project))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetResearchProject returns a single research project by id.
func (h *Handler) GetResearchProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid research project id")
		return
	}

	project, err := h.researchStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrResearchProjectNotFound) {
			writeError(w, http.StatusNotFound, "research project not found")
			return
		}
		h.logger.Error("failed to get research project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toResearchProjectResponse(*project))
}

// CreateResearchProject creates a new research project.
func (h *Handler) CreateResearchProject(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeResearchProjectRequest(w, r)
	if !ok {
		return
	}

	project, err := h.researchStore.Create(r.Context(), researchProjectFromRequest(req, 0))
	if err != nil {
		h.logger.Error("failed to create research project", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toResearchProjectResponse(project))
}

// UpdateResearchProject replaces the editable fields of a research project.
// GitHub enrichment fields are untouched; the sync loop owns those.
func (h *Handler) UpdateResearchProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid research project id")
		return
	}

	req, ok := decodeResearchProjectRequest(w, r)
	if !ok {
		return
	}

	project, err := h.researchStore.Update(r.Context(), researchProjectFromRequest(req, id))
	if err != nil {
		if errors.Is(err, driven.ErrResearchProjectNotFound) {
			writeError(w, http.StatusNotFound, "research project not found")
			return
		}
		h.logger.Error("failed to update research project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toResearchProjectResponse(project))
}

// DeleteResearchProject removes a research project by id.
func (h *Handler) DeleteResearchProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid research project id")
		return
	}

	if err := h.researchStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, driven.ErrResearchProjectNotFound) {
			writeError(w, http.StatusNotFound, "research project not found")
			return
		}
		h.logger.Error("failed to delete research project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefreshResearchMetadata triggers an immediate GitHub metadata sync pass and
// waits for it to finish.
func (h *Handler) RefreshResearchMetadata(w http.ResponseWriter, r *http.Request) {
	if err := h.syncSvc.Refresh(r.Context()); err != nil {
		h.logger.Error("manual metadata refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "metadata refresh failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

func decodeResearchProjectRequest(w http.ResponseWriter, r *http.Request) (ResearchProjectRequest, bool) {
	var req ResearchProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return ResearchProjectRequest{}, false
	}

	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "title and description are required")
		return ResearchProjectRequest{}, false
	}

	return req, true
}

func researchProjectFromRequest(req ResearchProjectRequest, id int64) model.ResearchProject {
	return model.ResearchProject{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		Technologies: req.Technologies,
		Status:       req.Status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Position:     req.Position,
	}
}
