package handler

import (
	"context"
	"log/slog"
	"net/http"

	"telemock/internal/delivery/mock"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserParams are the usecases the patient portal reaches.
type UserParams struct {
	fx.In

	Accounts     usecase.AccountUsecase
	Catalog      usecase.CatalogUsecase
	Appointments usecase.AppointmentUsecase
	Commerce     usecase.CommerceUsecase
	Blog         usecase.BlogUsecase
	Engagement   usecase.EngagementUsecase
	Logger       *slog.Logger
}

// UserHandler serves the UserPHP/ resources.
type UserHandler struct {
	accounts     usecase.AccountUsecase
	catalog      usecase.CatalogUsecase
	appointments usecase.AppointmentUsecase
	commerce     usecase.CommerceUsecase
	blog         usecase.BlogUsecase
	engagement   usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserParams) *UserHandler {
	return &UserHandler{
		accounts:     params.Accounts,
		catalog:      params.Catalog,
		appointments: params.Appointments,
		commerce:     params.Commerce,
		blog:         params.Blog,
		engagement:   params.Engagement,
		logger:       params.Logger,
	}
}

// Group registers the patient routes.
func (h *UserHandler) Group() *mock.Group {
	g := mock.NewGroup("user", "UserPHP")

	// Store
	g.Handle("cart.php", h.GetCart, http.MethodGet)
	g.Handle("cart.php", h.AddToCart, http.MethodPost)
	g.Handle("cart.php", h.UpdateCart, http.MethodPut, http.MethodPatch)
	g.Handle("cart.php", h.RemoveFromCart, http.MethodDelete)
	g.Handle("checkout.php", h.Checkout, http.MethodPost)
	g.Handle("getPedidos.php", h.GetOrders, http.MethodGet)
	g.Handle("createResena.php", h.CreateReview, http.MethodPost)
	g.Handle("getProductos.php", h.GetProducts, http.MethodGet)

	// Booking
	g.Handle("getEspecialidades.php", h.GetSpecialties, http.MethodGet)
	g.Handle("getTiposCita.php", h.GetAppointmentTypes, http.MethodGet)
	g.Handle("getMedicos.php", h.GetPhysicians, http.MethodGet)
	g.Handle("getHorarios.php", h.GetSlots, http.MethodGet)
	g.Handle("getMisCitas.php", h.GetMyAppointments, http.MethodGet)
	g.Handle("createCita.php", h.CreateAppointment, http.MethodPost)

	// Account, content and points
	g.Handle("updateAccount.php", h.UpdateAccount, http.MethodPut, http.MethodPost, http.MethodPatch)
	g.Handle("blog.php", h.Blog, http.MethodGet)
	g.Handle("blogLike.php", h.LikePost, http.MethodPost)
	g.Handle("gamificacion.php", h.GetPoints, http.MethodGet)
	g.Handle("gamificacion.php", h.AwardPoints, http.MethodPost)

	return g
}

func cartResponse(cart *usecase.Cart) *mock.Response {
	return mock.OK(mock.Fields{"carrito": cart.Lines, "total": cart.Total})
}

func (h *UserHandler) GetCart(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	cart, err := h.commerce.Cart(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cartResponse(cart), nil
}

// AddToCart accumulates quantity when the product is already in the cart.
func (h *UserHandler) AddToCart(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.CartItemInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	cart, err := h.commerce.AddToCart(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cartResponse(cart), nil
}

func (h *UserHandler) UpdateCart(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.CartUpdateInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	cart, err := h.commerce.UpdateCartLine(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cartResponse(cart), nil
}

func (h *UserHandler) RemoveFromCart(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}
	productID, err := requireID(req, "id_producto")
	if err != nil {
		return nil, err
	}

	cart, err := h.commerce.RemoveFromCart(ctx, userID, productID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return cartResponse(cart), nil
}

func (h *UserHandler) Checkout(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	order, err := h.commerce.Checkout(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"pedido": order}).WithMessage("Compra realizada"), nil
}

func (h *UserHandler) GetOrders(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	orders, err := h.commerce.Orders(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"pedidos": orders}), nil
}

func (h *UserHandler) CreateReview(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.ReviewInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	review, err := h.commerce.CreateReview(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"resena": review}).WithMessage("Gracias por tu reseña"), nil
}

func (h *UserHandler) GetProducts(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"productos": products}), nil
}

func (h *UserHandler) GetSpecialties(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	specialties, err := h.appointments.Specialties(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"especialidades": specialties}), nil
}

func (h *UserHandler) GetAppointmentTypes(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	types, err := h.appointments.Types(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"tipos": types}), nil
}

func (h *UserHandler) GetPhysicians(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	physicians, err := h.appointments.Physicians(ctx, req.Int("id_especialidad"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"medicos": physicians}), nil
}

func (h *UserHandler) GetSlots(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	physicianID, err := requireID(req, "id_medico")
	if err != nil {
		return nil, err
	}

	slots, err := h.appointments.Slots(ctx, physicianID, req.String("fecha"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"disponibles": slots.Available, "ocupados": slots.Taken}), nil
}

func (h *UserHandler) GetMyAppointments(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	patientID, err := requireID(req, "id_paciente")
	if err != nil {
		return nil, err
	}

	appointments, err := h.appointments.List(ctx, usecase.AppointmentFilter{PatientID: patientID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"citas": appointments}), nil
}

func (h *UserHandler) CreateAppointment(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.CreateAppointmentInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	appointment, err := h.appointments.Create(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"cita": appointment}).WithMessage("Cita reservada"), nil
}

func (h *UserHandler) UpdateAccount(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var patch usecase.AccountPatch
	if err := mock.Bind(req, &patch); err != nil {
		return nil, err
	}

	user, err := h.accounts.UpdateAccount(ctx, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"usuario": user}).WithMessage("Cuenta actualizada"), nil
}

// Blog lists published posts, or reads one by slug and counts the view.
func (h *UserHandler) Blog(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	if slug := req.String("slug"); slug != "" {
		post, err := h.blog.Read(ctx, slug)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return mock.OK(mock.Fields{"post": post}), nil
	}

	posts, err := h.blog.Published(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"posts": posts}), nil
}

func (h *UserHandler) LikePost(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	slug, err := requireString(req, "slug")
	if err != nil {
		return nil, err
	}

	likes, err := h.blog.Like(ctx, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"likes": likes}), nil
}

func (h *UserHandler) GetPoints(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	userID, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	points, err := h.engagement.Balance(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"puntos": points}), nil
}

func (h *UserHandler) AwardPoints(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.AwardInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	points, err := h.engagement.Award(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"puntos": points}), nil
}
