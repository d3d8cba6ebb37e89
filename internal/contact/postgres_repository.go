package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores contact submissions in the relational database.
type PostgresRepository struct {
	pool rowQuerier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("contact: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

func newPostgresRepositoryWithQuerier(q rowQuerier) *PostgresRepository {
	if q == nil {
		panic("contact: querier required")
	}
	return &PostgresRepository{pool: q}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *SubmitRequest) (*Submission, error) {
	id := uuid.New()
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, service, preferred_contact, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		id,
		req.Name,
		req.Email,
		req.Phone,
		req.Service,
		req.PreferredContact,
		req.Message,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("contact: insert failed: %w", err)
	}

	return &Submission{
		ID:               id.String(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Service:          req.Service,
		PreferredContact: req.PreferredContact,
		Message:          req.Message,
		CreatedAt:        createdAt,
	}, nil
}

// List returns the most recent submissions, newest first.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `
		SELECT id, name, email, phone, service, preferred_contact, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("contact: select failed: %w", err)
	}
	defer rows.Close()

	var out []*Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&sub.Service,
			&sub.PreferredContact,
			&sub.Message,
			&sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("contact: scan failed: %w", err)
		}
		out = append(out, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("contact: rows failed: %w", err)
	}
	return out, nil
}
