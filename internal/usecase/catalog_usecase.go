package usecase

import (
	"context"

	"telemock/internal/domain/entity"
)

// ProductInput is the admin form for a new product. Lookup ids that do not
// exist resolve to the first entry of their table.
type ProductInput struct {
	Name           string   `mapstructure:"nombre" validate:"required"`
	Description    string   `mapstructure:"descripcion"`
	Price          *float64 `mapstructure:"precio" validate:"required,gte=0"`
	Stock          int      `mapstructure:"stock" validate:"gte=0"`
	CategoryID     int      `mapstructure:"id_categoria"`
	TypeID         int      `mapstructure:"id_tipo"`
	AvailabilityID int      `mapstructure:"id_disponibilidad"`
	ImageURL       string   `mapstructure:"imagen"`
}

// ProductPatch is a merge-patch on a product.
type ProductPatch struct {
	ID             int      `mapstructure:"id_producto" validate:"required"`
	Name           *string  `mapstructure:"nombre" validate:"omitempty,min=1"`
	Description    *string  `mapstructure:"descripcion"`
	Price          *float64 `mapstructure:"precio" validate:"omitempty,gte=0"`
	Stock          *int     `mapstructure:"stock" validate:"omitempty,gte=0"`
	CategoryID     *int     `mapstructure:"id_categoria"`
	TypeID         *int     `mapstructure:"id_tipo"`
	AvailabilityID *int     `mapstructure:"id_disponibilidad"`
	ImageURL       *string  `mapstructure:"imagen"`
}

// Lookups groups the product reference tables.
type Lookups struct {
	Categories     []*entity.Lookup
	Types          []*entity.Lookup
	Availabilities []*entity.Lookup
}

// CatalogUsecase manages the store catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	Lookups(ctx context.Context) (*Lookups, error)
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, patch ProductPatch) (*entity.Product, error)
	// DeleteProduct fails with not-found unless a row was actually removed.
	DeleteProduct(ctx context.Context, id int) error
}
