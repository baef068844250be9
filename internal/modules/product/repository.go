package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no product has the requested id.
var ErrNotFound = errors.New("product not found")

// Repository defines the interface for product data storage. A product and
// its images are written atomically; GetByID and List return images loaded
// ascending by ordering.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Search(ctx context.Context, f Filter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, c Category) (int64, error)
	Count(ctx context.Context) (int64, error)
}
