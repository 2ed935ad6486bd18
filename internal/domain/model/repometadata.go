package model

import "time"

// RepoMetadata is the subset of GitHub repository data shown on research
// project cards.
type RepoMetadata struct {
	Owner        string
	Name         string
	Stars        int
	LastPushedAt time.Time
}
