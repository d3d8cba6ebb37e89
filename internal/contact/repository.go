package contact

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for contact submission storage.
type Repository interface {
	Create(ctx context.Context, req *SubmitRequest) (*Submission, error)
	List(ctx context.Context, limit int) ([]*Submission, error)
}

// InMemoryRepository stores submissions in memory. Used when no database is
// configured and in tests.
type InMemoryRepository struct {
	mu          sync.RWMutex
	submissions []*Submission
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create stores a new submission in memory.
func (r *InMemoryRepository) Create(ctx context.Context, req *SubmitRequest) (*Submission, error) {
	sub := &Submission{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Service:          req.Service,
		PreferredContact: req.PreferredContact,
		Message:          req.Message,
		CreatedAt:        time.Now().UTC(),
	}

	r.mu.Lock()
	r.submissions = append(r.submissions, sub)
	r.mu.Unlock()

	return sub, nil
}

// List returns the most recent submissions, newest first.
func (r *InMemoryRepository) List(ctx context.Context, limit int) ([]*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Submission, len(r.submissions))
	copy(out, r.submissions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
