package contact

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inquiry submitted by a visitor. ProductID is a weak
// reference: it is stored even when the product does not exist or is later
// deleted, and is only resolved best-effort at submission time.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Body      string
	ProductID *uuid.UUID
	CreatedAt time.Time
}

// Request is the wire shape for a contact submission.
type Request struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Email     string     `json:"email" validate:"required,email,max=100"`
	Phone     string     `json:"phone" validate:"omitempty,phone"`
	Message   string     `json:"message" validate:"required,max=2000"`
	ProductID *uuid.UUID `json:"productId"`
}

// Response is the wire shape for a stored contact message.
type Response struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Message   string     `json:"message"`
	ProductID *uuid.UUID `json:"productId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
