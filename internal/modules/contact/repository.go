package contact

import (
	"context"

	"github.com/imdhruv9/uttam-printing/internal/web"
)

// Repository defines the interface for contact message storage. Messages
// are created once and never mutated or deleted.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	// ListAll returns messages newest-first with the total count.
	ListAll(ctx context.Context, page web.PageRequest) ([]*Message, int64, error)
	// ListByEmail returns messages for an exact email match, newest-first.
	ListByEmail(ctx context.Context, email string, page web.PageRequest) ([]*Message, int64, error)
}
