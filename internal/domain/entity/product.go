package entity

import (
	"time"
)

// DefaultCategory is assigned to products created without an explicit category.
const DefaultCategory = "general"

// Product represents a single catalog record. Products carry no owner
// reference: any authenticated account may mutate any product, while reads
// are open to everyone.
type Product struct {
	ID          uint      `json:"id"`          // Primary key, assigned by the database on creation.
	Name        string    `json:"name"`        // Display name.
	Description string    `json:"description"` // Optional free-form description.
	Price       float64   `json:"price"`       // Non-negative monetary value.
	InStock     bool      `json:"in_stock"`    // Availability flag.
	ImageURL    string    `json:"image_url"`   // Optional image reference.
	Category    string    `json:"category"`    // Free-form label, defaults to "general".
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
