package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/pkg/validate"
)

// Service defines product business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]Response, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Response, error)
	CreateProduct(ctx context.Context, req Request) (*Response, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req Request) (*Response, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SearchProducts(ctx context.Context, f Filter) ([]Response, error)
	CountByCategory(ctx context.Context) (map[Category]int64, error)
	TotalCount(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// Option configures the service.
type Option func(*service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new product service.
func NewService(repo Repository, opts ...Option) Service {
	s := &service{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListProducts(ctx context.Context) ([]Response, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponseList(products), nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Response, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}
	return toResponse(p), nil
}

// CreateProduct validates the request and persists the product with its
// images atomically. At least one image is required at creation time.
func (s *service) CreateProduct(ctx context.Context, req Request) (*Response, error) {
	if details := validate.Struct(req); details != nil {
		return nil, apperr.Validation("Request validation failed", details...)
	}
	if len(req.Images) == 0 {
		return nil, apperr.Validation("At least one product image is required")
	}

	p := toEntity(req)
	p.ID = uuid.New()
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	for i := range p.Images {
		p.Images[i].ID = uuid.New()
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	zap.S().Infow("product created", "id", p.ID, "name", p.Name)
	return toResponse(p), nil
}

// UpdateProduct overwrites all mutable fields and fully replaces the image
// list. Unlike creation, an empty image list is accepted here.
func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, req Request) (*Response, error) {
	if details := validate.Struct(req); details != nil {
		return nil, apperr.Validation("Request validation failed", details...)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, id)
	}

	applyRequest(p, req)
	p.UpdatedAt = s.now()
	for i := range p.Images {
		p.Images[i].ID = uuid.New()
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, translate(err, id)
	}
	zap.S().Infow("product updated", "id", p.ID)
	return toResponse(p), nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, id)
	}
	zap.S().Infow("product deleted", "id", id)
	return nil
}

func (s *service) SearchProducts(ctx context.Context, f Filter) ([]Response, error) {
	products, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return toResponseList(products), nil
}

// CountByCategory returns a count for every declared category, zero
// included.
func (s *service) CountByCategory(ctx context.Context) (map[Category]int64, error) {
	counts := make(map[Category]int64, len(Categories()))
	for _, c := range Categories() {
		count, err := s.repo.CountByCategory(ctx, c)
		if err != nil {
			return nil, err
		}
		counts[c] = count
	}
	return counts, nil
}

func (s *service) TotalCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func translate(err error, id uuid.UUID) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Product not found with id: " + id.String())
	}
	return err
}
