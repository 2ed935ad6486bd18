// Package model contains the domain entities served by the portfolio API.
package model

import "time"

// BlogPost represents a single blog entry. Content is stored as markdown and
// rendered to sanitized HTML at the HTTP boundary.
type BlogPost struct {
	ID        int64
	Title     string
	Content   string
	Excerpt   string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Published bool
	Tags      string
}
