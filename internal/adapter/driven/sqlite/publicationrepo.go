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
var _ driven.PublicationStore = (*PublicationRepo)(nil)

// PublicationRepo is the SQLite implementation of the PublicationStore port interface.
type PublicationRepo struct {
	db *DB
}

// NewPublicationRepo creates a new PublicationRepo backed by the given DB.
func NewPublicationRepo(db *DB) *PublicationRepo {
	return &PublicationRepo{db: db}
}

// Create inserts a new publication and returns it with the assigned id.
func (r *PublicationRepo) Create(ctx context.Context, pub model.Publication) (model.Publication, error) {
	const query = `INSERT INTO publications
		(title, authors, journal, year, doi, pdf_url, abstract, citation, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Writer.ExecContext(ctx, query,
		pub.Title, pub.Authors, pub.Journal, pub.Year, pub.DOI,
		pub.PDFURL, pub.Abstract, pub.Citation, pub.Position)
	if err != nil {
		return model.Publication{}, fmt.Errorf("create publication: %w", err)
	}

	pub.ID, err = result.LastInsertId()
	if err != nil {
		return model.Publication{}, fmt.Errorf("publication insert id: %w", err)
	}

	return pub, nil
}

// Get retrieves a publication by id.
func (r *PublicationRepo) Get(ctx context.Context, id int64) (*model.Publication, error) {
	const query = `SELECT id, title, authors, journal, year, doi, pdf_url, abstract, citation, position
		FROM publications WHERE id = ?`

	pub, err := scanPublication(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get publication %d: %w", id, driven.ErrPublicationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get publication %d: %w", id, err)
	}

	return pub, nil
}

// List returns all publications ordered by year descending, then position.
func (r *PublicationRepo) List(ctx context.Context) ([]model.Publication, error) {
	const query = `SELECT id, title, authors, journal, year, doi, pdf_url, abstract, citation, position
		FROM publications ORDER BY year DESC, position, id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	defer rows.Close()

	var pubs []model.Publication
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan publication: %w", err)
		}
		pubs = append(pubs, *pub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate publications: %w", err)
	}

	return pubs, nil
}

// Update replaces all editable fields of a publication.
func (r *PublicationRepo) Update(ctx context.Context, pub model.Publication) (model.Publication, error) {
	const query = `UPDATE publications
		SET title = ?, authors = ?, journal = ?, year = ?, doi = ?, pdf_url = ?, abstract = ?, citation = ?, position = ?
		WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query,
		pub.Title, pub.Authors, pub.Journal, pub.Year, pub.DOI,
		pub.PDFURL, pub.Abstract, pub.Citation, pub.Position, pub.ID)
	if err != nil {
		return model.Publication{}, fmt.Errorf("update publication %d: %w", pub.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Publication{}, fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return model.Publication{}, fmt.Errorf("update publication %d: %w", pub.ID, driven.ErrPublicationNotFound)
	}

	return pub, nil
}

// Delete removes a publication by id.
func (r *PublicationRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM publications WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete publication %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete publication %d: %w", id, driven.ErrPublicationNotFound)
	}

	return nil
}

func scanPublication(s scanner) (*model.Publication, error) {
	var pub model.Publication

	err := s.Scan(&pub.ID, &pub.Title, &pub.Authors, &pub.Journal, &pub.Year,
		&pub.DOI, &pub.PDFURL, &pub.Abstract, &pub.Citation, &pub.Position)
	if err != nil {
		return nil, err
	}

	return &pub, nil
}
