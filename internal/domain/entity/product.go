package entity

import "github.com/shopspring/decimal"

func init() {
	// The front-end reads prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a store catalog item. Lookup names are denormalized from their ids.
type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"nombre"`
	Description    string          `json:"descripcion"`
	Price          decimal.Decimal `json:"precio"`
	Stock          int             `json:"stock"`
	CategoryID     int             `json:"id_categoria"`
	Category       string          `json:"categoria"`
	TypeID         int             `json:"id_tipo"`
	Type           string          `json:"tipo"`
	AvailabilityID int             `json:"id_disponibilidad"`
	Availability   string          `json:"disponibilidad"`
	ImageURL       string          `json:"imagen"`
}

func (p *Product) GetID() int { return p.ID }

func (p *Product) Clone() *Product {
	c := *p

	return &c
}

// Lookup is a small static reference row resolved by id to a display name.
type Lookup struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

func (l *Lookup) GetID() int { return l.ID }

func (l *Lookup) Clone() *Lookup {
	c := *l

	return &c
}
