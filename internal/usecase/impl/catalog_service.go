package impl

import (
	"context"
	"log/slog"
	"strconv"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	store  *memory.Store
	logger *slog.Logger
}

// NewCatalogService creates the product catalog service.
func NewCatalogService(store *memory.Store, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		store:  store,
		logger: logger,
	}
}

func (s *catalogService) ListProducts(_ context.Context) ([]*entity.Product, error) {
	return s.store.Products.Snapshot(), nil
}

func (s *catalogService) Lookups(_ context.Context) (*usecase.Lookups, error) {
	return &usecase.Lookups{
		Categories:     s.store.Categories.Snapshot(),
		Types:          s.store.ProductTypes.Snapshot(),
		Availabilities: s.store.Availabilities.Snapshot(),
	}, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          s.store.Products.NextID(0),
		Name:        input.Name,
		Description: input.Description,
		Price:       decimal.NewFromFloat(*input.Price),
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	s.resolveLookups(product, input.CategoryID, input.TypeID, input.AvailabilityID)
	s.store.Products.Insert(product)

	loggerFrom(ctx, s.logger).Info("product created", slog.Int("product_id", product.ID))

	return product.Clone(), nil
}

func (s *catalogService) UpdateProduct(_ context.Context, patch usecase.ProductPatch) (*entity.Product, error) {
	product, ok := s.store.Products.Find(patch.ID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(strconv.Itoa(patch.ID)))
	}

	set(&product.Name, patch.Name)
	set(&product.Description, patch.Description)
	if patch.Price != nil {
		product.Price = decimal.NewFromFloat(*patch.Price)
	}
	set(&product.Stock, patch.Stock)
	set(&product.ImageURL, patch.ImageURL)

	categoryID, typeID, availabilityID := product.CategoryID, product.TypeID, product.AvailabilityID
	set(&categoryID, patch.CategoryID)
	set(&typeID, patch.TypeID)
	set(&availabilityID, patch.AvailabilityID)
	s.resolveLookups(product, categoryID, typeID, availabilityID)

	return product.Clone(), nil
}

// DeleteProduct removes the product and every cart line that refers to it.
func (s *catalogService) DeleteProduct(ctx context.Context, id int) error {
	if !s.store.Products.Remove(id) {
		return errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(strconv.Itoa(id)))
	}

	purged := s.store.Carts.RemoveProduct(id)

	loggerFrom(ctx, s.logger).Info("product deleted", slog.Int("product_id", id), slog.Int("cart_lines_purged", purged))

	return nil
}

func (s *catalogService) resolveLookups(p *entity.Product, categoryID, typeID, availabilityID int) {
	p.CategoryID, p.Category = lookupName(s.store.Categories, categoryID)
	p.TypeID, p.Type = lookupName(s.store.ProductTypes, typeID)
	p.AvailabilityID, p.Availability = lookupName(s.store.Availabilities, availabilityID)
}
