package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product in a user's cart. Price is copied from the product
// when the line is created.
type CartLine struct {
	ProductID int             `json:"id_producto"`
	Name      string          `json:"nombre"`
	Quantity  int             `json:"cantidad"`
	Price     decimal.Decimal `json:"precio"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderStatus progresses forward only.
type OrderStatus string

const (
	OrderPaid      OrderStatus = "Pagado"
	OrderShipped   OrderStatus = "Enviado"
	OrderDelivered OrderStatus = "Entregado"
)

var orderProgression = []OrderStatus{OrderPaid, OrderShipped, OrderDelivered}

func (s OrderStatus) rank() int {
	for i, st := range orderProgression {
		if st == s {
			return i
		}
	}

	return -1
}

// IsValid checks if the status is one of the listed values.
func (s OrderStatus) IsValid() bool {
	return s.rank() >= 0
}

// CanAdvanceTo reports whether next is strictly later in the progression.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return s.IsValid() && next.IsValid() && next.rank() > s.rank()
}

// Buyer is the user snapshot stored on an order.
type Buyer struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// Order (pedido) placed from a cart.
type Order struct {
	ID        int             `json:"id"`
	Buyer     Buyer           `json:"comprador"`
	Status    OrderStatus     `json:"estado"`
	Total     decimal.Decimal `json:"total"`
	Items     []CartLine      `json:"items"`
	CanReview bool            `json:"puede_resenar"`
	CreatedAt time.Time       `json:"fecha"`
}

func (o *Order) GetID() int { return o.ID }

func (o *Order) Clone() *Order {
	c := *o
	c.Items = append([]CartLine(nil), o.Items...)

	return &c
}

// HasProduct reports whether any line refers to productID.
func (o *Order) HasProduct(productID int) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}

// ProductRef is the product snapshot stored on a review.
type ProductRef struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

// Review (resena) left by a buyer.
type Review struct {
	ID        int        `json:"id"`
	Rating    int        `json:"calificacion"`
	Comment   string     `json:"comentario"`
	CreatedAt time.Time  `json:"fecha"`
	Reviewer  Buyer      `json:"usuario"`
	Product   ProductRef `json:"producto"`
}

func (r *Review) GetID() int { return r.ID }

func (r *Review) Clone() *Review {
	c := *r

	return &c
}
