package model

import (
	"net/url"
	"strings"
	"time"
)

// ResearchProject represents a research project card on the portfolio site.
// Position controls custom display ordering. Stars and LastPushedAt are
// populated by the GitHub metadata sync for projects whose ProjectURL points
// at a github.com repository; they stay nil otherwise.
type ResearchProject struct {
	ID           int64
	Title        string
	Description  string
	ImageURL     string
	ProjectURL   string
	Technologies string
	Status       string
	StartDate    string
	EndDate      string
	Position     int
	Stars        *int
	LastPushedAt *time.Time
}

// GitHubRepo parses ProjectURL and returns the owner and repository name when
// the URL points at a github.com repository. ok is false for any other URL.
func (p *ResearchProject) GitHubRepo() (owner, repo string, ok bool) {
	u, err := url.Parse(p.ProjectURL)
	if err != nil {
		return "", "", false
	}
	if !strings.EqualFold(u.Host, "github.com") && !strings.EqualFold(u.Host, "www.github.com") {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
