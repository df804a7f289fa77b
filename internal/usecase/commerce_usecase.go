package usecase

import (
	"context"

	"telemock/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartOperation is a symbolic quantity change.
type CartOperation string

const (
	CartIncrement CartOperation = "increment"
	CartDecrement CartOperation = "decrement"
)

// CartItemInput adds quantity of a product to a cart. Quantity below 1 counts as 1.
type CartItemInput struct {
	UserID    int `mapstructure:"id_usuario" validate:"required"`
	ProductID int `mapstructure:"id_producto" validate:"required"`
	Quantity  int `mapstructure:"cantidad"`
}

// CartUpdateInput sets a line's quantity directly or through Operation.
// Operation wins when both are present; results are floored at 1.
type CartUpdateInput struct {
	UserID    int    `mapstructure:"id_usuario" validate:"required"`
	ProductID int    `mapstructure:"id_producto" validate:"required"`
	Quantity  *int   `mapstructure:"cantidad"`
	Operation string `mapstructure:"operacion" validate:"omitempty,oneof=increment decrement"`
}

// Cart is a user's cart with its computed total.
type Cart struct {
	Lines []entity.CartLine
	Total decimal.Decimal
}

// ReviewInput rates a product.
type ReviewInput struct {
	UserID    int    `mapstructure:"id_usuario" validate:"required"`
	ProductID int    `mapstructure:"id_producto" validate:"required"`
	Rating    int    `mapstructure:"calificacion" validate:"required,min=1,max=5"`
	Comment   string `mapstructure:"comentario"`
}

// OrderStatusInput advances an order.
type OrderStatusInput struct {
	ID     int    `mapstructure:"id_pedido" validate:"required"`
	Status string `mapstructure:"estado" validate:"required,oneof=Pagado Enviado Entregado"`
}

// CommerceUsecase covers carts, checkout, orders and reviews.
type CommerceUsecase interface {
	Cart(ctx context.Context, userID int) (*Cart, error)
	AddToCart(ctx context.Context, input CartItemInput) (*Cart, error)
	UpdateCartLine(ctx context.Context, input CartUpdateInput) (*Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID int) (*Cart, error)
	Checkout(ctx context.Context, userID int) (*entity.Order, error)
	// Orders lists every order when buyerID is zero.
	Orders(ctx context.Context, buyerID int) ([]*entity.Order, error)
	AdvanceOrder(ctx context.Context, input OrderStatusInput) (*entity.Order, error)
	Reviews(ctx context.Context) ([]*entity.Review, error)
	CreateReview(ctx context.Context, input ReviewInput) (*entity.Review, error)
}
