package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/ericfisherdev/portfolio-api/internal/application"
	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// SubmitContactMessage accepts a public contact form submission. Repeated
// submissions from the same address inside the throttle window get a 429
// with a Retry-After header; persistence failures get a 500; the email
// notification is best-effort and never affects the response.
func (h *Handler) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name and message are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	msg := model.ContactMessage{
		Name:    req.Name,
		Email:   application.NormalizeEmail(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}

	saved, retryAfter, err := h.contactSvc.Submit(r.Context(), msg)
	if err != nil {
		if errors.Is(err, application.ErrRateLimited) {
			seconds := int(retryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			writeError(w, http.StatusTooManyRequests,
				fmt.Sprintf("too many submissions, retry in %ds", seconds))
			return
		}
		h.logger.Error("failed to store contact message", "sender", msg.Email, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toContactMessageResponse(saved))
}

// ListContactMessages returns stored messages, newest first.
func (h *Handler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r, 50)

	msgs, err := h.contactStore.List(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list contact messages", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ContactMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		resp = append(resp, toContactMessageResponse(msg))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetContactMessage returns a single message by id.
func (h *Handler) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	msg, err := h.contactStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrContactMessageNotFound) {
			writeError(w, http.StatusNotFound, "contact message not found")
			return
		}
		h.logger.Error("failed to get contact message", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toContactMessageResponse(*msg))
}

// DeleteContactMessage removes a message by id.
func (h *Handler) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.contactStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, driven.ErrContactMessageNotFound) {
			writeError(w, http.StatusNotFound, "contact message not found")
			return
		}
		h.logger.Error("failed to delete contact message", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkContactMessageRead flags a message as read and returns the updated entity.
func (h *Handler) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.contactStore.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, driven.ErrContactMessageNotFound) {
			writeError(w, http.StatusNotFound, "contact message not found")
			return
		}
		h.logger.Error("failed to mark contact message read", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	msg, err := h.contactStore.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload contact message", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toContactMessageResponse(*msg))
}
