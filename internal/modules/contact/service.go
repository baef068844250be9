package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/mailer"
	"github.com/imdhruv9/uttam-printing/internal/modules/product"
	"github.com/imdhruv9/uttam-printing/internal/web"
	"github.com/imdhruv9/uttam-printing/pkg/validate"
)

// Service defines contact inquiry business logic.
type Service interface {
	Submit(ctx context.Context, req Request) (*Response, error)
	ListAll(ctx context.Context, page web.PageRequest) (*web.Page[Response], error)
	ListByEmail(ctx context.Context, email string, page web.PageRequest) (*web.Page[Response], error)
}

type service struct {
	repo     Repository
	products product.Repository
	mail     mailer.Sender
	now      func() time.Time
	// dispatch runs the notification attempt; the default detaches it
	// from the request goroutine.
	dispatch func(func())
}

// Option configures the service.
type Option func(*service)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithSyncDispatch runs notification attempts inline instead of on a
// separate goroutine. Failures are still swallowed.
func WithSyncDispatch() Option {
	return func(s *service) { s.dispatch = func(fn func()) { fn() } }
}

// NewService creates a new contact service.
func NewService(repo Repository, products product.Repository, mail mailer.Sender, opts ...Option) Service {
	s := &service{
		repo:     repo,
		products: products,
		mail:     mail,
		now:      time.Now,
		dispatch: func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates and persists the inquiry, then fires a best-effort
// notification. Once the message is persisted the caller always receives
// success; notification failures are only logged.
func (s *service) Submit(ctx context.Context, req Request) (*Response, error) {
	if details := validate.Struct(req); details != nil {
		return nil, apperr.Validation("Request validation failed", details...)
	}

	// Best-effort product resolution, for notification content only.
	// A dangling product id is fine; the reference is stored as-is.
	var productName string
	if req.ProductID != nil {
		if p, err := s.products.GetByID(ctx, *req.ProductID); err == nil {
			productName = p.Name
		} else {
			zap.S().Debugw("contact message references unresolved product",
				"product_id", req.ProductID)
		}
	}

	m := toEntity(req)
	m.ID = uuid.New()
	m.CreatedAt = s.now()

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	zap.S().Infow("contact message submitted", "id", m.ID, "email", m.Email)

	s.notify(mailer.Notification{
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Message:     m.Body,
		ProductID:   m.ProductID,
		ProductName: productName,
	}, m.ID)

	return toResponse(m), nil
}

// notify hands the delivery attempt to the dispatcher. Nothing here can
// reach the caller's error channel.
func (s *service) notify(n mailer.Notification, id uuid.UUID) {
	s.dispatch(func() {
		defer func() {
			if r := recover(); r != nil {
				zap.S().Errorw("contact notification panicked", "id", id, "panic", r)
			}
		}()
		if err := s.mail.SendContactNotification(n); err != nil {
			zap.S().Errorw("contact notification failed", "id", id, "error", err)
			return
		}
		zap.S().Infow("contact notification sent", "id", id)
	})
}

func (s *service) ListAll(ctx context.Context, page web.PageRequest) (*web.Page[Response], error) {
	messages, total, err := s.repo.ListAll(ctx, page)
	if err != nil {
		return nil, err
	}
	return web.NewPage(toResponseList(messages), page, total), nil
}

func (s *service) ListByEmail(ctx context.Context, email string, page web.PageRequest) (*web.Page[Response], error) {
	messages, total, err := s.repo.ListByEmail(ctx, email, page)
	if err != nil {
		return nil, err
	}
	return web.NewPage(toResponseList(messages), page, total), nil
}
