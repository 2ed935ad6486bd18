package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContactStore = (*ContactRepo)(nil)

// ContactRepo is the SQLite implementation of the ContactStore port interface.
type ContactRepo struct {
	db *DB
}

// NewContactRepo creates a new ContactRepo backed by the given DB.
func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Create inserts a new contact message and returns it with the assigned id.
func (r *ContactRepo) Create(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (name, email, subject, message, created_at, read)
		VALUES (?, ?, ?, ?, ?, ?)`

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, formatTime(msg.CreatedAt), msg.Read)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("create contact message: %w", err)
	}

	msg.ID, err = result.LastInsertId()
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("contact message insert id: %w", err)
	}

	return msg, nil
}

// Get retrieves a contact message by id.
func (r *ContactRepo) Get(ctx context.Context, id int64) (*model.ContactMessage, error) {
	const query = `SELECT id, name, email, subject, message, created_at, read
		FROM contact_messages WHERE id = ?`

	msg, err := scanContactMessage(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contact message %d: %w", id, driven.ErrContactMessageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contact message %d: %w", id, err)
	}

	return msg, nil
}

// List returns contact messages, newest first. A non-positive limit defaults to 50.
func (r *ContactRepo) List(ctx context.Context, skip, limit int) ([]model.ContactMessage, error) {
	const query = `SELECT id, name, email, subject, message, created_at, read
		FROM contact_messages ORDER BY created_at DESC LIMIT ? OFFSET ?`

	if limit <= 0 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := r.db.Reader.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var msgs []model.ContactMessage
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		msgs = append(msgs, *msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}

	return msgs, nil
}

// Delete removes a contact message by id.
func (r *ContactRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contact_messages WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete contact message %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete contact message %d: %w", id, driven.ErrContactMessageNotFound)
	}

	return nil
}

// MarkRead flags a contact message as read.
func (r *ContactRepo) MarkRead(ctx context.Context, id int64) error {
	const query = `UPDATE contact_messages SET read = 1 WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark contact message %d read: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mark contact message %d read: %w", id, driven.ErrContactMessageNotFound)
	}

	return nil
}

func scanContactMessage(s scanner) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	var createdAt string

	err := s.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &createdAt, &msg.Read)
	if err != nil {
		return nil, err
	}

	msg.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &msg, nil
}
