package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// ListBlogPosts returns published blog posts, newest first. Supports skip
// and limit query parameters.
func (h *Handler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	skip, limit := listParams(r, 10)

	posts, err := h.blogStore.List(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list blog posts", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, toBlogPostResponse(post))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetBlogPost returns a single blog post by id, including the sanitized HTML
// rendering of its markdown content.
func (h *Handler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid blog post id")
		return
	}

	post, err := h.blogStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, driven.ErrBlogPostNotFound) {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
		h.logger.Error("failed to get blog post", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := toBlogPostResponse(*post)
	resp.HTML = RenderMarkdown(post.Content)

	writeJSON(w, http.StatusOK, resp)
}

// CreateBlogPost creates a new blog post. Published defaults to true.
func (h *Handler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBlogPostRequest(w, r)
	if !ok {
		return
	}

	post, err := h.blogStore.Create(r.Context(), blogPostFromRequest(req, 0))
	if err != nil {
		h.logger.Error("failed to create blog post", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toBlogPostResponse(post))
}

// UpdateBlogPost replaces the editable fields of a blog post.
func (h *Handler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid blog post id")
		return
	}

	req, ok := decodeBlogPostRequest(w, r)
	if !ok {
		return
	}

	post, err := h.blogStore.Update(r.Context(), blogPostFromRequest(req, id))
	if err != nil {
		if errors.Is(err, driven.ErrBlogPostNotFound) {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
		h.logger.Error("failed to update blog post", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toBlogPostResponse(post))
}

// DeleteBlogPost removes a blog post by id.
func (h *Handler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid blog post id")
		return
	}

	if err := h.blogStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, driven.ErrBlogPostNotFound) {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
		h.logger.Error("failed to delete blog post", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBlogPostRequest(w http.ResponseWriter, r *http.Request) (BlogPostRequest, bool) {
	var req BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return BlogPostRequest{}, false
	}

	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "title and content are required")
		return BlogPostRequest{}, false
	}

	return req, true
}

func blogPostFromRequest(req BlogPostRequest, id int64) model.BlogPost {
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	return model.BlogPost{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Author:    req.Author,
		Published: published,
		Tags:      req.Tags,
	}
}
