package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ResumeStore is the persistence boundary for resumes. Every operation is
// scoped to the owning user; a resume owned by someone else is reported as missing.
type ResumeStore interface {
	CreateResume(ctx context.Context, ownerID uuid.UUID, title, content string) (*Resume, error)
	ListResumesByOwner(ctx context.Context, ownerID uuid.UUID) ([]Resume, error)
	GetResume(ctx context.Context, ownerID, id uuid.UUID) (*Resume, error)
	UpdateResumeContent(ctx context.Context, ownerID, id uuid.UUID, content string) (*Resume, error)
	DeleteResume(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

var _ ResumeStore = (*DB)(nil)

const resumeColumns = `id, title, content, owner_id, created_at, updated_at`

// CreateResume inserts a resume and returns the stored record
func (db *DB) CreateResume(ctx context.Context, ownerID uuid.UUID, title, content string) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (title, content, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING `+resumeColumns,
		title, content, ownerID,
	)
	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// ListResumesByOwner returns the owner's resumes, newest first
func (db *DB) ListResumesByOwner(ctx context.Context, ownerID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+`
		 FROM resumes WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	resumes := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return resumes, nil
}

// GetResume retrieves a resume by ID. Returns nil if not found.
func (db *DB) GetResume(ctx context.Context, ownerID, id uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+`
		 FROM resumes WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// UpdateResumeContent replaces the content of a resume. Returns nil if not found.
func (db *DB) UpdateResumeContent(ctx context.Context, ownerID, id uuid.UUID, content string) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE resumes SET content = $1, updated_at = NOW()
		 WHERE id = $2 AND owner_id = $3
		 RETURNING `+resumeColumns,
		content, id, ownerID,
	)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return resume, nil
}

// DeleteResume removes a resume and reports whether it existed
func (db *DB) DeleteResume(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	if err := row.Scan(&r.ID, &r.Title, &r.Content, &r.OwnerID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}
