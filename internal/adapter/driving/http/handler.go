// Package httphandler is the HTTP driving adapter that serves the REST API.
package httphandler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/cors"

	"github.com/ericfisherdev/portfolio-api/internal/application"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// Pinger reports storage connectivity for the health endpoint. *sql.DB
// satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	blogStore        driven.BlogStore
	researchStore    driven.ResearchStore
	publicationStore driven.PublicationStore
	contactStore     driven.ContactStore
	contactSvc       *application.ContactService
	tokens           *application.TokenService
	syncSvc          *application.ProjectSyncService
	pinger           Pinger
	logger           *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. syncSvc and
// pinger may be nil.
func NewHandler(
	blogStore driven.BlogStore,
	researchStore driven.ResearchStore,
	publicationStore driven.PublicationStore,
	contactStore driven.ContactStore,
	contactSvc *application.ContactService,
	tokens *application.TokenService,
	syncSvc *application.ProjectSyncService,
	pinger Pinger,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		blogStore:        blogStore,
		researchStore:    researchStore,
		publicationStore: publicationStore,
		contactStore:     contactStore,
		contactSvc:       contactSvc,
		tokens:           tokens,
		syncSvc:          syncSvc,
		pinger:           pinger,
		logger:           logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with recovery, security header, CORS, and logging middleware. Read
// endpoints are public; every state-mutating endpoint except the contact
// form submission requires a bearer token.
func NewServeMux(h *Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("GET /api/auth/verify", h.VerifyAuth)

	mux.HandleFunc("GET /api/blogs", h.ListBlogPosts)
	mux.HandleFunc("GET /api/blogs/{id}", h.GetBlogPost)
	mux.HandleFunc("POST /api/blogs", h.requireAuth(h.CreateBlogPost))
	mux.HandleFunc("PUT /api/blogs/{id}", h.requireAuth(h.UpdateBlogPost))
	mux.HandleFunc("DELETE /api/blogs/{id}", h.requireAuth(h.DeleteBlogPost))

	mux.HandleFunc("GET /api/research", h.ListResearchProjects)
	mux.HandleFunc("GET /api/research/{id}", h.GetResearchProject)
	mux.HandleFunc("POST /api/research", h.requireAuth(h.CreateResearchProject))
	mux.HandleFunc("PUT /api/research/{id}", h.requireAuth(h.UpdateResearchProject))
	mux.HandleFunc("DELETE /api/research/{id}", h.requireAuth(h.DeleteResearchProject))
	mux.HandleFunc("POST /api/research/refresh", h.requireAuth(h.RefreshResearchMetadata))

	mux.HandleFunc("GET /api/papers", h.ListPublications)
	mux.HandleFunc("GET /api/papers/{id}", h.GetPublication)
	mux.HandleFunc("POST /api/papers", h.requireAuth(h.CreatePublication))
	mux.HandleFunc("PUT /api/papers/{id}", h.requireAuth(h.UpdatePublication))
	mux.HandleFunc("DELETE /api/papers/{id}", h.requireAuth(h.DeletePublication))

	mux.HandleFunc("POST /api/contact", h.SubmitContactMessage)
	mux.HandleFunc("GET /api/contact", h.requireAuth(h.ListContactMessages))
	mux.HandleFunc("GET /api/contact/{id}", h.requireAuth(h.GetContactMessage))
	mux.HandleFunc("DELETE /api/contact/{id}", h.requireAuth(h.DeleteContactMessage))
	mux.HandleFunc("PATCH /api/contact/{id}/mark-read", h.requireAuth(h.MarkContactMessageRead))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	})

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = securityHeadersMiddleware(wrapped)
	wrapped = corsHandler.Handler(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Health returns service status with a storage connectivity probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:   "ok",
		Database: "connected",
		Time:     time.Now().UTC().Format(time.RFC3339),
	}

	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			h.logger.Error("health check db ping failed", "error", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// pathID parses the {id} path value as a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// listParams parses optional skip and limit query parameters.
func listParams(r *http.Request, defaultLimit int) (skip, limit int) {
	limit = defaultLimit
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}
