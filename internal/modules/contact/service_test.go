package contact

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/mailer"
	"github.com/imdhruv9/uttam-printing/internal/modules/product"
	"github.com/imdhruv9/uttam-printing/internal/web"
)

// fakeRepo is an in-memory contact message store.
type fakeRepo struct {
	messages []*Message
}

func (f *fakeRepo) Create(_ context.Context, m *Message) error {
	cp := *m
	f.messages = append(f.messages, &cp)
	return nil
}

func (f *fakeRepo) ListAll(_ context.Context, page web.PageRequest) ([]*Message, int64, error) {
	return paginate(f.messages, page)
}

func (f *fakeRepo) ListByEmail(_ context.Context, email string, page web.PageRequest) ([]*Message, int64, error) {
	var matched []*Message
	for _, m := range f.messages {
		if m.Email == email {
			matched = append(matched, m)
		}
	}
	return paginate(matched, page)
}

func paginate(messages []*Message, page web.PageRequest) ([]*Message, int64, error) {
	sorted := append([]*Message(nil), messages...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	total := int64(len(sorted))
	start := page.Offset()
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + page.Limit()
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end], total, nil
}

// fakeProducts implements just enough of product.Repository for lookup.
type fakeProducts struct {
	byID map[uuid.UUID]*product.Product
}

func (f *fakeProducts) GetByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, product.ErrNotFound
}

func (f *fakeProducts) Create(context.Context, *product.Product) error { return nil }

func (f *fakeProducts) List(context.Context) ([]*product.Product, error) { return nil, nil }

func (f *fakeProducts) Search(context.Context, product.Filter) ([]*product.Product, error) {
	return nil, nil
}

func (f *fakeProducts) Update(context.Context, *product.Product) error { return nil }

func (f *fakeProducts) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeProducts) CountByCategory(context.Context, product.Category) (int64, error) {
	return 0, nil
}

func (f *fakeProducts) Count(context.Context) (int64, error) { return 0, nil }

// fakeSender records notification attempts and can be made to fail.
type fakeSender struct {
	sent []mailer.Notification
	err  error
}

func (f *fakeSender) SendContactNotification(n mailer.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func validRequest() Request {
	return Request{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "+919876543210",
		Message: "Do you print wedding cards?",
	}
}

func newTestService(repo *fakeRepo, products *fakeProducts, sender *fakeSender, opts ...Option) Service {
	if products == nil {
		products = &fakeProducts{byID: map[uuid.UUID]*product.Product{}}
	}
	opts = append([]Option{WithSyncDispatch()}, opts...)
	return NewService(repo, products, sender, opts...)
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, nil, sender, WithClock(func() time.Time { return clock }))

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, clock, resp.CreatedAt)
	require.Len(t, repo.messages, 1)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "asha@example.com", sender.sent[0].Email)
}

// A dangling product reference is not an error: the id is stored as-is.
func TestSubmitWithUnresolvedProductID(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := newTestService(repo, nil, sender)

	missing := uuid.New()
	req := validRequest()
	req.ProductID = &missing

	resp, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.ProductID)
	assert.Equal(t, missing, *resp.ProductID)
	require.Len(t, repo.messages, 1)
}

func TestSubmitResolvedProductNameInNotification(t *testing.T) {
	id := uuid.New()
	products := &fakeProducts{byID: map[uuid.UUID]*product.Product{
		id: {ID: id, Name: "Flex Banner"},
	}}
	sender := &fakeSender{}
	svc := newTestService(&fakeRepo{}, products, sender)

	req := validRequest()
	req.ProductID = &id

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Flex Banner", sender.sent[0].ProductName)
}

// Notification failure never reaches the caller; the message stays
// persisted.
func TestSubmitSucceedsWhenNotificationFails(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	svc := newTestService(repo, nil, sender)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.Len(t, repo.messages, 1)
	require.Len(t, sender.sent, 1)
}

func TestSubmitValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.Name = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"bad phone", func(r *Request) { r.Phone = "12ab" }},
		{"missing message", func(r *Request) { r.Message = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			sender := &fakeSender{}
			svc := newTestService(repo, nil, sender)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Empty(t, repo.messages, "invalid submissions are not persisted")
			assert.Empty(t, sender.sent, "invalid submissions are not notified")
		})
	}
}

func TestListAllNewestFirst(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, nil, sender, WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	for _, name := range []string{"first", "second", "third"} {
		req := validRequest()
		req.Name = name
		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err)
	}

	page, err := svc.ListAll(context.Background(), web.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "third", page.Content[0].Name)
	assert.Equal(t, "second", page.Content[1].Name)
}

func TestListByEmail(t *testing.T) {
	repo := &fakeRepo{}
	sender := &fakeSender{}
	svc := newTestService(repo, nil, sender)

	req := validRequest()
	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	other := validRequest()
	other.Email = "someone.else@example.com"
	_, err = svc.Submit(context.Background(), other)
	require.NoError(t, err)

	page, err := svc.ListByEmail(context.Background(), "asha@example.com", web.PageRequest{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "asha@example.com", page.Content[0].Email)
}
