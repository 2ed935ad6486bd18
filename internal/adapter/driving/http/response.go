package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the JSON body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON representation of an issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyResponse is returned by the token verification endpoint.
type VerifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// BlogPostRequest is the JSON body for blog post create and update.
// Published defaults to true when omitted.
type BlogPostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Author    string `json:"author"`
	Published *bool  `json:"published"`
	Tags      string `json:"tags"`
}

// BlogPostResponse is the JSON representation of a blog post. HTML carries
// the sanitized rendering of Content and is populated only on the detail
// endpoint.
type BlogPostResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	HTML      string `json:"html,omitempty"`
	Excerpt   string `json:"excerpt"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Published bool   `json:"published"`
	Tags      string `json:"tags"`
}

// ContactRequest is the JSON body for a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactMessageResponse is the JSON representation of a contact message.
type ContactMessageResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}

// ResearchProjectRequest is the JSON body for research project create and update.
type ResearchProjectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	ProjectURL   string `json:"project_url"`
	Technologies string `json:"technologies"`
	Status       string `json:"status"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Position     int    `json:"position"`
}

// ResearchProjectResponse is the JSON representation of a research project.
// Stars and LastPushedAt are present only for projects enriched by the
// GitHub metadata sync.
type ResearchProjectResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	ProjectURL   string `json:"project_url"`
	Technologies string `json:"technologies"`
	Status       string `json:"status"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Position     int    `json:"position"`
	Stars        *int   `json:"stars,omitempty"`
	LastPushedAt string `json:"last_pushed_at,omitempty"`
}

// PublicationRequest is the JSON body for publication create and update.
type PublicationRequest struct {
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Journal  string `json:"journal"`
	Year     int    `json:"year"`
	DOI      string `json:"doi"`
	PDFURL   string `json:"pdf_url"`
	Abstract string `json:"abstract"`
	Citation string `json:"citation"`
	Position int    `json:"position"`
}

// PublicationResponse is the JSON representation of a publication.
type PublicationResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Journal  string `json:"journal"`
	Year     int    `json:"year"`
	DOI      string `json:"doi"`
	PDFURL   string `json:"pdf_url"`
	Abstract string `json:"abstract"`
	Citation string `json:"citation"`
	Position int    `json:"position"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// toBlogPostResponse converts a domain BlogPost to its JSON response representation.
func toBlogPostResponse(post model.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Excerpt:   post.Excerpt,
		Author:    post.Author,
		CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.UTC().Format(time.RFC3339),
		Published: post.Published,
		Tags:      post.Tags,
	}
}

// toContactMessageResponse converts a domain ContactMessage to its JSON representation.
func toContactMessageResponse(msg model.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
		Read:      msg.Read,
	}
}

// toResearchProjectResponse converts a domain ResearchProject to its JSON representation.
func toResearchProjectResponse(project model.ResearchProject) ResearchProjectResponse {
	resp := ResearchProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		ImageURL:     project.ImageURL,
		ProjectURL:   project.ProjectURL,
		Technologies: project.Technologies,
		Status:       project.Status,
		StartDate:    project.StartDate,
		EndDate:      project.EndDate,
		Position:     project.Position,
		Stars:        project.Stars,
	}
	if project.LastPushedAt != nil {
		resp.LastPushedAt = project.LastPushedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// toPublicationResponse converts a domain Publication to its JSON representation.
func toPublicationResponse(pub model.Publication) PublicationResponse {
	return PublicationResponse{
		ID:       pub.ID,
		Title:    pub.Title,
		Authors:  pub.Authors,
		Journal:  pub.Journal,
		Year:     pub.Year,
		DOI:      pub.DOI,
		PDFURL:   pub.PDFURL,
		Abstract: pub.Abstract,
		Citation: pub.Citation,
		Position: pub.Position,
	}
}
