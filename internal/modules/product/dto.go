package product

import (
	"time"

	"github.com/google/uuid"
)

// Request is the wire shape for creating or updating a product.
type Request struct {
	Name         string         `json:"name" validate:"required,max=150"`
	Description  string         `json:"description" validate:"required,max=2000"`
	Category     Category       `json:"category" validate:"required,oneof=FLEX_PRINTING PAMPHLET"`
	PricePerSqft float64        `json:"pricePerSqft" validate:"required,price"`
	Negotiable   *bool          `json:"negotiable"`
	Images       []ImageRequest `json:"images" validate:"dive"`
}

// ImageRequest is the wire shape for a product image.
type ImageRequest struct {
	URL      string `json:"url" validate:"required,max=500"`
	AltText  string `json:"altText" validate:"max=255"`
	Ordering *int   `json:"ordering" validate:"omitempty,min=0"`
}

// Response is the wire shape for a product.
type Response struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     Category        `json:"category"`
	PricePerSqft float64         `json:"pricePerSqft"`
	Negotiable   bool            `json:"negotiable"`
	Images       []ImageResponse `json:"images"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ImageResponse is the wire shape for a product image.
type ImageResponse struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	AltText  string    `json:"altText,omitempty"`
	Ordering int       `json:"ordering"`
}
