package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ResearchStore = (*ResearchRepo)(nil)

// ResearchRepo is the SQLite implementation of the ResearchStore port interface.
type ResearchRepo struct {
	db *DB
}

// NewResearchRepo creates a new ResearchRepo backed by the given DB.
func NewResearchRepo(db *DB) *ResearchRepo {
	return &ResearchRepo{db: db}
}

// Create inserts a new research project and returns it with the assigned id.
// An empty status defaults to "Completed".
func (r *ResearchRepo) Create(ctx context.Context, project model.ResearchProject) (model.ResearchProject, error) {
	const query = `INSERT INTO research_projects
		(title, description, image_url, project_url, technologies, status, start_date, end_date, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if project.Status == "" {
		project.Status = "Completed"
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		project.Title, project.Description, project.ImageURL, project.ProjectURL,
		project.Technologies, project.Status, project.StartDate, project.EndDate, project.Position)
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("create research project: %w", err)
	}

	project.ID, err = result.LastInsertId()
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("research project insert id: %w", err)
	}

	return project, nil
}

// Get retrieves a research project by id.
func (r *ResearchRepo) Get(ctx context.Context, id int64) (*model.ResearchProject, error) {
	const query = `SELECT id, title, description, image_url, project_url, technologies,
		status, start_date, end_date, position, stars, last_pushed_at
		FROM research_projects WHERE id = ?`

	project, err := scanResearchProject(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get research project %d: %w", id, driven.ErrResearchProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get research project %d: %w", id, err)
	}

	return project, nil
}

// List returns all research projects ordered by position, then id.
func (r *ResearchRepo) List(ctx context.Context) ([]model.ResearchProject, error) {
	const query = `SELECT id, title, description, image_url, project_url, technologies,
		status, start_date, end_date, position, stars, last_pushed_at
		FROM research_projects ORDER BY position, id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list research projects: %w", err)
	}
	defer rows.Close()

	var projects []model.ResearchProject
	for rows.Next() {
		project, err := scanResearchProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan research project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate research projects: %w", err)
	}

	return projects, nil
}

// Update replaces the editable fields of a research project. The enrichment
// columns are left untouched; UpdateMetadata owns those.
func (r *ResearchRepo) Update(ctx context.Context, project model.ResearchProject) (model.ResearchProject, error) {
	const query = `UPDATE research_projects
		SET title = ?, description = ?, image_url = ?, project_url = ?, technologies = ?,
		    status = ?, start_date = ?, end_date = ?, position = ?
		WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query,
		project.Title, project.Description, project.ImageURL, project.ProjectURL,
		project.Technologies, project.Status, project.StartDate, project.EndDate,
		project.Position, project.ID)
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("update research project %d: %w", project.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.ResearchProject{}, fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return model.ResearchProject{}, fmt.Errorf("update research project %d: %w", project.ID, driven.ErrResearchProjectNotFound)
	}

	updated, err := r.Get(ctx, project.ID)
	if err != nil {
		return model.ResearchProject{}, err
	}

	return *updated, nil
}

// UpdateMetadata writes the GitHub enrichment columns for a project.
func (r *ResearchRepo) UpdateMetadata(ctx context.Context, id int64, meta model.RepoMetadata) error {
	const query = `UPDATE research_projects SET stars = ?, last_pushed_at = ? WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, meta.Stars, formatTime(meta.LastPushedAt), id)
	if err != nil {
		return fmt.Errorf("update research project %d metadata: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update research project %d metadata: %w", id, driven.ErrResearchProjectNotFound)
	}

	return nil
}

// Delete removes a research project by id.
func (r *ResearchRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM research_projects WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete research project %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete research project %d: %w", id, driven.ErrResearchProjectNotFound)
	}

	return nil
}

func scanResearchProject(s scanner) (*model.ResearchProject, error) {
	var project model.ResearchProject
	var stars sql.NullInt64
	var lastPushedAt sql.NullString

	err := s.Scan(&project.ID, &project.Title, &project.Description, &project.ImageURL,
		&project.ProjectURL, &project.Technologies, &project.Status,
		&project.StartDate, &project.EndDate, &project.Position, &stars, &lastPushedAt)
	if err != nil {
		return nil, err
	}

	if stars.Valid {
		n := int(stars.Int64)
		project.Stars = &n
	}

	if lastPushedAt.Valid && lastPushedAt.String != "" {
		t, err := parseTime(lastPushedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse last_pushed_at: %w", err)
		}
		project.LastPushedAt = &t
	}

	return &project, nil
}
