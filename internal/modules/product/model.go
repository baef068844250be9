package product

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of product kinds offered by the press.
type Category string

const (
	// CategoryFlexPrinting is priced per square foot.
	CategoryFlexPrinting Category = "FLEX_PRINTING"
	// CategoryPamphlet is priced per piece.
	CategoryPamphlet Category = "PAMPHLET"
)

// Categories returns every declared category. Analytics iterate this set so
// empty categories still report a zero count.
func Categories() []Category {
	return []Category{CategoryFlexPrinting, CategoryPamphlet}
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlexPrinting, CategoryPamphlet:
		return true
	}
	return false
}

// DisplayName returns the human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryFlexPrinting:
		return "Flex Printing"
	case CategoryPamphlet:
		return "Pamphlet"
	}
	return string(c)
}

// Product is a printable product in the storefront. It owns its images:
// replacing the image list deletes the orphaned rows.
type Product struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Category     Category
	PricePerSqft float64
	Negotiable   bool
	Images       []Image
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Image is an image owned by a product, displayed ascending by Ordering.
// Images carry no back-reference; ownership runs one way.
type Image struct {
	ID       uuid.UUID
	URL      string
	AltText  string
	Ordering int
}

// Filter narrows a product search. Nil/empty fields are no-ops; set fields
// combine with AND.
type Filter struct {
	Category *Category
	Query    string
	MinPrice *float64
	MaxPrice *float64
}
