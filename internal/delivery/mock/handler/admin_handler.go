package handler

import (
	"context"
	"log/slog"
	"net/http"

	"telemock/internal/delivery/mock"
	"telemock/internal/domain/entity"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminParams are the usecases the administrator panel reaches.
type AdminParams struct {
	fx.In

	Accounts     usecase.AccountUsecase
	Catalog      usecase.CatalogUsecase
	Appointments usecase.AppointmentUsecase
	Clinical     usecase.ClinicalUsecase
	Commerce     usecase.CommerceUsecase
	Blog         usecase.BlogUsecase
	Engagement   usecase.EngagementUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the AdminPHP/ resources.
type AdminHandler struct {
	accounts     usecase.AccountUsecase
	catalog      usecase.CatalogUsecase
	appointments usecase.AppointmentUsecase
	clinical     usecase.ClinicalUsecase
	commerce     usecase.CommerceUsecase
	blog         usecase.BlogUsecase
	engagement   usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(params AdminParams) *AdminHandler {
	return &AdminHandler{
		accounts:     params.Accounts,
		catalog:      params.Catalog,
		appointments: params.Appointments,
		clinical:     params.Clinical,
		commerce:     params.Commerce,
		blog:         params.Blog,
		engagement:   params.Engagement,
		logger:       params.Logger,
	}
}

// Group registers the admin routes.
func (h *AdminHandler) Group() *mock.Group {
	g := mock.NewGroup("admin", "AdminPHP")

	// Users
	g.Handle("getUser.php", h.GetUsers, http.MethodGet)
	g.Handle("createUser.php", h.CreateUser, http.MethodPost)
	g.Handle("updateUser.php", h.UpdateUser, http.MethodPut, http.MethodPost, http.MethodPatch)
	g.Handle("toggleUserState.php", h.ToggleUserState, http.MethodPost, http.MethodPut)

	// Catalog
	g.Handle("getProductos.php", h.GetProducts, http.MethodGet)
	g.Handle("getLookups.php", h.GetLookups, http.MethodGet)
	g.Handle("createProducto.php", h.CreateProduct, http.MethodPost)
	g.Handle("updateProducto.php", h.UpdateProduct, http.MethodPut, http.MethodPost, http.MethodPatch)
	g.Handle("deleteProducto.php", h.DeleteProduct, http.MethodDelete, http.MethodPost)

	// Appointments and clinical records
	g.Handle("getCitas.php", h.GetAppointments, http.MethodGet)
	g.Handle("citaAction.php", h.AppointmentAction, http.MethodPost, http.MethodPut)
	g.Handle("getHistorial.php", h.GetHistory, http.MethodGet)
	g.Handle("deleteHistorial.php", h.DeleteHistory, http.MethodDelete, http.MethodPost)
	g.Handle("getMedicos.php", h.GetPhysicians, http.MethodGet)

	// Store, content and metrics
	g.Handle("dashboard.php", h.Dashboard, http.MethodGet)
	g.Handle("getPedidos.php", h.GetOrders, http.MethodGet)
	g.Handle("updatePedido.php", h.UpdateOrder, http.MethodPut, http.MethodPost)
	g.Handle("getResenas.php", h.GetReviews, http.MethodGet)
	g.Handle("blog.php", h.ListPosts, http.MethodGet)
	g.Handle("blog.php", h.CreatePost, http.MethodPost)
	g.Handle("blog.php", h.UpdatePost, http.MethodPatch, http.MethodPut)
	g.Handle("blog.php", h.DeletePost, http.MethodDelete)
	g.Handle("gamificacion.php", h.Ranking, http.MethodGet)

	return g
}

// GetUsers lists users, or returns one when id_usuario is given.
func (h *AdminHandler) GetUsers(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	if id := req.Int("id_usuario"); id > 0 {
		user, err := h.accounts.GetUser(ctx, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return mock.OK(mock.Fields{"usuario": user}), nil
	}

	users, err := h.accounts.ListUsers(ctx, entity.Role(req.String("rol")))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"usuarios": users}), nil
}

func (h *AdminHandler) CreateUser(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.CreateUserInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	user, err := h.accounts.CreateUser(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"usuario": user}).WithMessage("Usuario creado"), nil
}

func (h *AdminHandler) UpdateUser(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var patch usecase.UserPatch
	if err := mock.Bind(req, &patch); err != nil {
		return nil, err
	}

	user, err := h.accounts.UpdateUser(ctx, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"usuario": user}).WithMessage("Usuario actualizado"), nil
}

func (h *AdminHandler) ToggleUserState(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	id, err := requireID(req, "id_usuario")
	if err != nil {
		return nil, err
	}

	user, err := h.accounts.ToggleState(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"usuario": user}), nil
}

func (h *AdminHandler) GetProducts(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"productos": products}), nil
}

func (h *AdminHandler) GetLookups(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	lookups, err := h.catalog.Lookups(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{
		"categorias":       lookups.Categories,
		"tipos":            lookups.Types,
		"disponibilidades": lookups.Availabilities,
	}), nil
}

func (h *AdminHandler) CreateProduct(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.ProductInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	product, err := h.catalog.CreateProduct(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"producto": product}).WithMessage("Producto creado"), nil
}

func (h *AdminHandler) UpdateProduct(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var patch usecase.ProductPatch
	if err := mock.Bind(req, &patch); err != nil {
		return nil, err
	}

	product, err := h.catalog.UpdateProduct(ctx, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"producto": product}).WithMessage("Producto actualizado"), nil
}

// DeleteProduct succeeds only when a row was actually removed.
func (h *AdminHandler) DeleteProduct(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	id, err := requireID(req, "id_producto")
	if err != nil {
		return nil, err
	}

	if err := h.catalog.DeleteProduct(ctx, id); err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(nil).WithMessage("Producto eliminado"), nil
}

func (h *AdminHandler) GetAppointments(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	appointments, err := h.appointments.List(ctx, usecase.AppointmentFilter{
		Status:      entity.AppointmentStatus(req.String("estado")),
		PatientID:   req.Int("id_paciente"),
		PhysicianID: req.Int("id_medico"),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"citas": appointments}), nil
}

func (h *AdminHandler) AppointmentAction(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	return appointmentAction(ctx, h.appointments, req)
}

func (h *AdminHandler) GetHistory(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	return historyResponse(ctx, h.clinical, req)
}

// DeleteHistory removes the history with its prescriptions.
func (h *AdminHandler) DeleteHistory(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	id, err := requireID(req, "id_historial")
	if err != nil {
		return nil, err
	}

	removed, err := h.clinical.DeleteHistory(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"recetas_eliminadas": removed}).WithMessage("Historial eliminado"), nil
}

func (h *AdminHandler) GetPhysicians(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	physicians, err := h.appointments.Physicians(ctx, req.Int("id_especialidad"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"medicos": physicians}), nil
}

func (h *AdminHandler) Dashboard(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	metrics, err := h.engagement.Dashboard(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"data": metrics}), nil
}

func (h *AdminHandler) GetOrders(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	orders, err := h.commerce.Orders(ctx, req.Int("id_usuario"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"pedidos": orders}), nil
}

func (h *AdminHandler) UpdateOrder(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.OrderStatusInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	order, err := h.commerce.AdvanceOrder(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"pedido": order}), nil
}

func (h *AdminHandler) GetReviews(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	reviews, err := h.commerce.Reviews(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"resenas": reviews}), nil
}

// ListPosts filters by estado and searches q over title, excerpt and content.
func (h *AdminHandler) ListPosts(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	posts, err := h.blog.List(ctx, usecase.PostFilter{
		Status: entity.PostStatus(req.String("estado")),
		Query:  req.String("q"),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"posts": posts}), nil
}

func (h *AdminHandler) CreatePost(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var input usecase.CreatePostInput
	if err := mock.Bind(req, &input); err != nil {
		return nil, err
	}

	post, err := h.blog.Create(ctx, input)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.Created(mock.Fields{"post": post}).WithMessage("Publicación creada"), nil
}

func (h *AdminHandler) UpdatePost(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	var patch usecase.PostPatch
	if err := mock.Bind(req, &patch); err != nil {
		return nil, err
	}

	post, err := h.blog.Update(ctx, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"post": post}), nil
}

func (h *AdminHandler) DeletePost(ctx context.Context, req *mock.Request) (*mock.Response, error) {
	id, err := requireID(req, "id")
	if err != nil {
		return nil, err
	}

	if err := h.blog.Delete(ctx, id); err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(nil).WithMessage("Publicación eliminada"), nil
}

func (h *AdminHandler) Ranking(ctx context.Context, _ *mock.Request) (*mock.Response, error) {
	ranking, err := h.engagement.Ranking(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mock.OK(mock.Fields{"puntos": ranking}), nil
}
