package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// ListPublications returns all publications, newest year first.
func (h *Handler) ListPublications(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.publicationStore.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list publications", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]PublicationResponse, 0, len(pubs))
	for _, pub := range pubs {
		resp = append(resp, toPublicationResponse(pub))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPublication returns a single publication by id.
func (h *Handler) GetPublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	pub, err := h.publicationStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrPublicationNotFound) {
			writeError(w, http.StatusNotFound, "publication not found")
			return
		}
		h.logger.Error("failed to get publication", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toPublicationResponse(*pub))
}

// CreatePublication creates a new publication entry.
func (h *Handler) CreatePublication(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePublicationRequest(w, r)
	if !ok {
		return
	}

	pub, err := h.publicationStore.Create(r.Context(), publicationFromRequest(req, 0))
	if err != nil {
		h.logger.Error("failed to create publication", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toPublicationResponse(pub))
}

// UpdatePublication replaces the fields of a publication.
func (h *Handler) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	req, ok := decodePublicationRequest(w, r)
	if !ok {
		return
	}

	pub, err := h.publicationStore.Update(r.Context(), publicationFromRequest(req, id))
	if err != nil {
		if errors.Is(err, driven.ErrPublicationNotFound) {
			writeError(w, http.StatusNotFound, "publication not found")
			return
		}
		h.logger.Error("failed to update publication", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toPublicationResponse(pub))
}

// DeletePublication removes a publication by id.
func (h *Handler) DeletePublication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid publication id")
		return
	}

	if err := h.publicationStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, driven.ErrPublicationNotFound) {
			writeError(w, http.StatusNotFound, "publication not found")
			return
		}
		h.logger.Error("failed to delete publication", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodePublicationRequest(w http.ResponseWriter, r *http.Request) (PublicationRequest, bool) {
	var req PublicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return PublicationRequest{}, false
	}

	if req.Title == "" || req.Authors == "" {
		writeError(w, http.StatusBadRequest, "title and authors are required")
		return PublicationRequest{}, false
	}

	return req, true
}

func publicationFromRequest(req PublicationRequest, id int64) model.Publication {
	return model.Publication{
		ID:       id,
		Title:    req.Title,
		Authors:  req.Authors,
		Journal:  req.Journal,
		Year:     req.Year,
		DOI:      req.DOI,
		PDFURL:   req.PDFURL,
		Abstract: req.Abstract,
		Citation: req.Citation,
		Position: req.Position,
	}
}
