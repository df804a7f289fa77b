package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type commerceService struct {
	store  *memory.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewCommerceService creates the cart, order and review service.
func NewCommerceService(store *memory.Store, logger *slog.Logger) usecase.CommerceUsecase {
	return &commerceService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *commerceService) Cart(_ context.Context, userID int) (*usecase.Cart, error) {
	if _, ok := s.store.Users.Find(userID); !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(userID)))
	}

	return s.cart(userID), nil
}

// AddToCart accumulates quantity on an existing line or appends a new one
// priced from the catalog.
func (s *commerceService) AddToCart(_ context.Context, input usecase.CartItemInput) (*usecase.Cart, error) {
	if _, ok := s.store.Users.Find(input.UserID); !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(input.UserID)))
	}
	product, ok := s.store.Products.Find(input.ProductID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(strconv.Itoa(input.ProductID)))
	}

	quantity := max(input.Quantity, 1)
	if line, found := s.store.Carts.Line(input.UserID, product.ID); found {
		line.Quantity += quantity
	} else {
		s.store.Carts.Append(input.UserID, &entity.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	return s.cart(input.UserID), nil
}

func (s *commerceService) UpdateCartLine(_ context.Context, input usecase.CartUpdateInput) (*usecase.Cart, error) {
	line, ok := s.store.Carts.Line(input.UserID, input.ProductID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrCartLineNotFound.WithDetails(strconv.Itoa(input.ProductID)))
	}

	switch usecase.CartOperation(input.Operation) {
	case usecase.CartIncrement:
		line.Quantity++
	case usecase.CartDecrement:
		line.Quantity--
	default:
		if input.Quantity == nil {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("cantidad"))
		}
		line.Quantity = *input.Quantity
	}
	line.Quantity = max(line.Quantity, 1)

	return s.cart(input.UserID), nil
}

func (s *commerceService) RemoveFromCart(_ context.Context, userID, productID int) (*usecase.Cart, error) {
	if !s.store.Carts.Remove(userID, productID) {
		return nil, errors.WithStack(domainerrors.ErrCartLineNotFound.WithDetails(strconv.Itoa(productID)))
	}

	return s.cart(userID), nil
}

// Checkout turns the cart into a paid order. Stock is checked for every line
// before any of it is taken.
func (s *commerceService) Checkout(ctx context.Context, userID int) (*entity.Order, error) {
	user, ok := s.store.Users.Find(userID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(userID)))
	}

	lines := s.store.Carts.Lines(userID)
	if len(lines) == 0 {
		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	products := make([]*entity.Product, len(lines))
	for i, line := range lines {
		product, found := s.store.Products.Find(line.ProductID)
		if !found {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(strconv.Itoa(line.ProductID)))
		}
		if product.Stock < line.Quantity {
			return nil, errors.WithStack(domainerrors.ErrInsufficientStock.WithDetails(product.Name))
		}
		products[i] = product
	}

	for i, line := range lines {
		products[i].Stock -= line.Quantity
	}

	cart := s.cart(userID)
	order := &entity.Order{
		ID:        s.store.Orders.NextID(0),
		Buyer:     buyerOf(user),
		Status:    entity.OrderPaid,
		Total:     cart.Total,
		Items:     cart.Lines,
		CreatedAt: s.now().UTC(),
	}
	s.store.Orders.Insert(order)
	s.store.Carts.Clear(userID)

	loggerFrom(ctx, s.logger).Info("order placed",
		slog.Int("order_id", order.ID),
		slog.Int("user_id", userID),
		slog.String("total", order.Total.String()),
	)

	return order.Clone(), nil
}

func (s *commerceService) Orders(_ context.Context, buyerID int) ([]*entity.Order, error) {
	if buyerID == 0 {
		return s.store.Orders.Snapshot(), nil
	}

	matching := s.store.Orders.Filter(func(o *entity.Order) bool { return o.Buyer.ID == buyerID })

	return memory.CloneAll(matching), nil
}

// AdvanceOrder moves an order forward. Delivered orders become reviewable.
func (s *commerceService) AdvanceOrder(ctx context.Context, input usecase.OrderStatusInput) (*entity.Order, error) {
	order, ok := s.store.Orders.Find(input.ID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound.WithDetails(strconv.Itoa(input.ID)))
	}

	next := entity.OrderStatus(input.Status)
	if !order.Status.CanAdvanceTo(next) {
		return nil, errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(string(order.Status) + " -> " + input.Status))
	}

	order.Status = next
	order.CanReview = next == entity.OrderDelivered

	loggerFrom(ctx, s.logger).Info("order advanced", slog.Int("order_id", order.ID), slog.String("status", input.Status))

	return order.Clone(), nil
}

func (s *commerceService) Reviews(_ context.Context) ([]*entity.Review, error) {
	return s.store.Reviews.Snapshot(), nil
}

func (s *commerceService) CreateReview(_ context.Context, input usecase.ReviewInput) (*entity.Review, error) {
	user, ok := s.store.Users.Find(input.UserID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails(strconv.Itoa(input.UserID)))
	}
	product, ok := s.store.Products.Find(input.ProductID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(strconv.Itoa(input.ProductID)))
	}

	review := &entity.Review{
		ID:        s.store.Reviews.NextID(0),
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: s.now().UTC(),
		Reviewer:  buyerOf(user),
		Product:   entity.ProductRef{ID: product.ID, Name: product.Name},
	}
	s.store.Reviews.Insert(review)

	return review.Clone(), nil
}

func (s *commerceService) cart(userID int) *usecase.Cart {
	lines := s.store.Carts.Snapshot(userID)

	return &usecase.Cart{
		Lines: lines,
		Total: lo.Reduce(lines, func(total decimal.Decimal, l entity.CartLine, _ int) decimal.Decimal {
			return total.Add(l.Subtotal())
		}, decimal.Zero),
	}
}

func buyerOf(u *entity.User) entity.Buyer {
	return entity.Buyer{ID: u.ID, Name: u.FullName(), Email: u.Email}
}
