package types

import (
	"time"

	"github.com/google/uuid"
)

// Producer is a coffee grower or estate listed in the catalog.
type Producer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProducerParams struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UpdateProducerParams carries a partial update; nil fields keep their
// current value.
type UpdateProducerParams struct {
	Name        *string  `json:"name"`
	Country     *string  `json:"country"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (p UpdateProducerParams) IsEmpty() bool {
	return p.Name == nil && p.Country == nil && p.Description == nil && p.Price == nil
}

// Coffee is one sellable coffee in the catalog.
type Coffee struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin,omitempty"`
	Roast       string    `json:"roast,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCoffeeParams struct {
	Name        string  `json:"name"`
	Origin      string  `json:"origin"`
	Roast       string  `json:"roast"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type UpdateCoffeeParams struct {
	Name        *string  `json:"name"`
	Origin      *string  `json:"origin"`
	Roast       *string  `json:"roast"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (p UpdateCoffeeParams) IsEmpty() bool {
	return p.Name == nil && p.Origin == nil && p.Roast == nil && p.Description == nil && p.Price == nil
}

// Pack is a purchasable bundle (alone, couple, family and friends).
type Pack struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Size        string    `json:"size,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreatePackParams struct {
	Name        string  `json:"name"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type UpdatePackParams struct {
	Name        *string  `json:"name"`
	Size        *string  `json:"size"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (p UpdatePackParams) IsEmpty() bool {
	return p.Name == nil && p.Size == nil && p.Description == nil && p.Price == nil
}
