package impl

import (
	"context"
	"testing"

	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProductResolvesLookups(t *testing.T) {
	tests := []struct {
		name             string
		input            usecase.ProductInput
		wantCategory     string
		wantType         string
		wantAvailability string
	}{
		{
			name:             "known ids",
			input:            usecase.ProductInput{Name: "Oxímetro", Price: ptr(45.5), Stock: 10, CategoryID: 2, TypeID: 1, AvailabilityID: 3},
			wantCategory:     "Dispositivos médicos",
			wantType:         "Genérico",
			wantAvailability: "Bajo pedido",
		},
		{
			name:             "unknown ids default to first entry",
			input:            usecase.ProductInput{Name: "Gasas", Price: ptr(3.0), CategoryID: 99, TypeID: 0, AvailabilityID: -1},
			wantCategory:     "Medicamentos",
			wantType:         "Genérico",
			wantAvailability: "Disponible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(newTestStore(t), discardLogger())

			product, err := svc.CreateProduct(context.Background(), tt.input)
			require.NoError(t, err)

			assert.Equal(t, 105, product.ID)
			assert.Equal(t, tt.wantCategory, product.Category)
			assert.Equal(t, tt.wantType, product.Type)
			assert.Equal(t, tt.wantAvailability, product.Availability)
		})
	}
}

func TestCatalogService_CreateProductPrice(t *testing.T) {
	svc := NewCatalogService(newTestStore(t), discardLogger())

	product, err := svc.CreateProduct(context.Background(), usecase.ProductInput{Name: "Mascarilla", Price: ptr(12.35)})
	require.NoError(t, err)
	assert.Equal(t, "12.35", product.Price.String())
}

func TestCatalogService_UpdateProductIsMergePatch(t *testing.T) {
	store := newTestStore(t)
	svc := NewCatalogService(store, discardLogger())

	product, err := svc.UpdateProduct(context.Background(), usecase.ProductPatch{ID: 101, Stock: ptr(3), AvailabilityID: ptr(3)})
	require.NoError(t, err)

	assert.Equal(t, 3, product.Stock)
	assert.Equal(t, "Bajo pedido", product.Availability)
	assert.Equal(t, "Tensiómetro digital", product.Name)
	assert.Equal(t, "199.9", product.Price.String())
	assert.Equal(t, "Dispositivos médicos", product.Category)

	product.Name = "mutated"
	stored, _ := store.Products.Find(101)
	assert.Equal(t, "Tensiómetro digital", stored.Name)

	_, err = svc.UpdateProduct(context.Background(), usecase.ProductPatch{ID: 404})
	assertAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProductReportsRemoval(t *testing.T) {
	svc := NewCatalogService(newTestStore(t), discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, 104))
	assertAppError(t, svc.DeleteProduct(ctx, 104), domainerrors.ErrProductNotFound)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestCatalogService_DeleteProductPurgesCarts(t *testing.T) {
	store := newTestStore(t)
	catalog := NewCatalogService(store, discardLogger())
	commerce := NewCommerceService(store, discardLogger())
	ctx := context.Background()

	_, err := commerce.AddToCart(ctx, usecase.CartItemInput{UserID: 3, ProductID: 102, Quantity: 1})
	require.NoError(t, err)
	_, err = commerce.AddToCart(ctx, usecase.CartItemInput{UserID: 3, ProductID: 101, Quantity: 1})
	require.NoError(t, err)
	_, err = commerce.AddToCart(ctx, usecase.CartItemInput{UserID: 4, ProductID: 102, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, 102))

	cart, err := commerce.Cart(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 101, cart.Lines[0].ProductID)
	assert.Equal(t, "199.9", cart.Total.String())

	other, err := commerce.Cart(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
	assert.True(t, other.Total.IsZero())

	order, err := commerce.Checkout(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "199.9", order.Total.String())
}

func TestCatalogService_UpdateProductKeepsCartPrice(t *testing.T) {
	store := newTestStore(t)
	catalog := NewCatalogService(store, discardLogger())
	commerce := NewCommerceService(store, discardLogger())
	ctx := context.Background()

	_, err := commerce.AddToCart(ctx, usecase.CartItemInput{UserID: 3, ProductID: 101, Quantity: 1})
	require.NoError(t, err)

	updated, err := catalog.UpdateProduct(ctx, usecase.ProductPatch{ID: 101, Price: ptr(250.0)})
	require.NoError(t, err)
	assert.Equal(t, "250", updated.Price.String())

	cart, err := commerce.Cart(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "199.9", cart.Lines[0].Price.String())
	assert.Equal(t, "199.9", cart.Total.String())
}

func TestCatalogService_Lookups(t *testing.T) {
	svc := NewCatalogService(newTestStore(t), discardLogger())

	lookups, err := svc.Lookups(context.Background())
	require.NoError(t, err)
	assert.Len(t, lookups.Categories, 3)
	assert.Len(t, lookups.Types, 2)
	assert.Len(t, lookups.Availabilities, 3)
}
