package contact

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/imdhruv9/uttam-printing/internal/web"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL contact message repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Message) error {
	var phone interface{}
	if m.Phone != "" {
		phone = m.Phone
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, message, product_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.Name, m.Email, phone, m.Body, m.ProductID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact_message: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListAll(ctx context.Context, page web.PageRequest) ([]*Message, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}
	messages, err := r.queryMessages(ctx, `
		SELECT id, name, email, phone, message, product_id, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, page.Limit(), page.Offset())
	return messages, total, err
}

func (r *postgresRepo) ListByEmail(ctx context.Context, email string, page web.PageRequest) ([]*Message, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE email=$1`, email).Scan(&total); err != nil {
		return nil, 0, err
	}
	messages, err := r.queryMessages(ctx, `
		SELECT id, name, email, phone, message, product_id, created_at
		FROM contact_messages
		WHERE email=$1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, email, page.Limit(), page.Offset())
	return messages, total, err
}

func (r *postgresRepo) queryMessages(ctx context.Context, query string, args ...interface{}) ([]*Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		var phone sql.NullString
		var productID uuid.NullUUID
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Body, &productID, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Phone = phone.String
		if productID.Valid {
			id := productID.UUID
			m.ProductID = &id
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
