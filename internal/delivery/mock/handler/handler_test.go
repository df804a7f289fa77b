package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"telemock/config"
	"telemock/internal/delivery/mock"
	"telemock/internal/infra/auth"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope map[string]any

func newTestRouter(t *testing.T) *mock.Router {
	t.Helper()

	hasher := auth.NewPlaintextHasher()
	store, err := memory.New(hasher)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	accounts := impl.NewAccountService(store, hasher, logger)
	catalog := impl.NewCatalogService(store, logger)
	appointments := impl.NewAppointmentService(store, logger)
	clinical := impl.NewClinicalService(store, logger)
	commerce := impl.NewCommerceService(store, logger)
	blog := impl.NewBlogService(store, logger)
	engagement := impl.NewEngagementService(store, logger)

	return NewRouter(RouterParams{
		Config: &config.Config{Mock: &config.MockConfig{}},
		Logger: logger,
		Auth:   NewAuthHandler(impl.NewAuthService(store, hasher, logger), logger),
		Admin: NewAdminHandler(AdminParams{
			Accounts:     accounts,
			Catalog:      catalog,
			Appointments: appointments,
			Clinical:     clinical,
			Commerce:     commerce,
			Blog:         blog,
			Engagement:   engagement,
			Logger:       logger,
		}),
		User: NewUserHandler(UserParams{
			Accounts:     accounts,
			Catalog:      catalog,
			Appointments: appointments,
			Commerce:     commerce,
			Blog:         blog,
			Engagement:   engagement,
			Logger:       logger,
		}),
		Medic: NewMedicHandler(clinical, appointments, logger),
		Chat:  NewChatHandler(impl.NewChatService(store, logger), logger),
	})
}

// call sends body as JSON and returns the status with the decoded envelope.
func call(t *testing.T, router *mock.Router, method, resource string, query url.Values, body map[string]any) (int, envelope) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	target := "/api/" + resource
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	httpReq := httptest.NewRequest(method, target, &payload)
	httpReq.Header.Set("Content-Type", "application/json")

	req, err := mock.NewRequest(resource, httpReq)
	require.NoError(t, err)

	resp, err := router.Resolve(context.Background(), req)
	require.NoError(t, err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, json.Unmarshal(data, &out))

	return resp.Status, out
}

func ids(t *testing.T, list any, key string) []float64 {
	t.Helper()

	items, ok := list.([]any)
	require.True(t, ok, "expected a list, got %T", list)

	out := make([]float64, 0, len(items))
	for _, item := range items {
		out = append(out, item.(map[string]any)[key].(float64))
	}

	return out
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodPost, "auth/login.php", nil, map[string]any{"username": "MEDICO", "password": "medico"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	user := body["user"].(map[string]any)
	assert.Equal(t, float64(2), user["id"])
	assert.Equal(t, "Medico", user["rol"])
	assert.NotContains(t, user, "password")

	status, body = call(t, router, http.MethodPost, "auth/login.php", nil, map[string]any{"username": "medico", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, envelope{"success": false, "message": "Credenciales inválidas"}, body)
}

func TestRegisterThenLogin(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodPost, "auth/register.php", nil, map[string]any{
		"username": "nuevo",
		"password": "secreto",
		"nombre":   "Nuevo",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Registro exitoso", body["message"])
	assert.Equal(t, "Paciente", body["user"].(map[string]any)["rol"])

	status, _ = call(t, router, http.MethodPost, "auth/login.php", nil, map[string]any{"username": "nuevo", "password": "secreto"})
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, router, http.MethodPost, "auth/register.php", nil, map[string]any{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Datos inválidos: username, nombre", body["message"])
}

func TestCartScenario(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodPost, "auth/login.php", nil, map[string]any{"username": "cliente", "password": "cliente"})
	require.Equal(t, http.StatusOK, status)
	userID := body["user"].(map[string]any)["id"]
	assert.Equal(t, float64(3), userID)

	status, body = call(t, router, http.MethodPost, "UserPHP/cart.php", nil, map[string]any{"id_usuario": userID, "id_producto": 101, "cantidad": 1})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["carrito"].([]any)[0].(map[string]any)["cantidad"])

	status, body = call(t, router, http.MethodPost, "UserPHP/cart.php", nil, map[string]any{"id_usuario": "3", "id_producto": "101", "cantidad": "2"})
	require.Equal(t, http.StatusOK, status)

	lines := body["carrito"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].(map[string]any)
	assert.Equal(t, float64(3), line["cantidad"])
	assert.Equal(t, "199.9", line["precio"])

	status, body = call(t, router, http.MethodPost, "UserPHP/checkout.php", nil, map[string]any{"id_usuario": 3})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(7003), body["pedido"].(map[string]any)["id"])

	status, body = call(t, router, http.MethodGet, "UserPHP/cart.php", url.Values{"id_usuario": {"3"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["carrito"])
}

func TestCheckoutInsufficientStock(t *testing.T) {
	router := newTestRouter(t)

	_, _ = call(t, router, http.MethodPost, "UserPHP/cart.php", nil, map[string]any{"id_usuario": 3, "id_producto": 104})
	status, body := call(t, router, http.MethodPost, "UserPHP/checkout.php", nil, map[string]any{"id_usuario": 3})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Stock insuficiente: Protector solar FPS 50", body["message"])
}

func TestConfirmedAppointmentsForPhysician(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "MedicPHP/getCitasConfirmadas.php", url.Values{"id_medico": {"2"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []float64{1201}, ids(t, body["citas"], "id"))

	status, body = call(t, router, http.MethodGet, "MedicPHP/getCitasConfirmadas.php", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Datos inválidos: id_medico", body["message"])
}

func TestGetHistory(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "AdminPHP/getHistorial.php", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []float64{9001, 9002, 9003, 9004}, ids(t, body["data"], "id"))

	status, body = call(t, router, http.MethodGet, "MedicPHP/getHistorial.php", url.Values{"id_historial": {"9001"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(9001), body["data"].(map[string]any)["id"])

	status, _ = call(t, router, http.MethodGet, "MedicPHP/getHistorial.php", url.Values{"id_historial": {"1"}}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteHistoryCascades(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodDelete, "AdminPHP/deleteHistorial.php", url.Values{"id_historial": {"9001"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["recetas_eliminadas"])

	status, body = call(t, router, http.MethodGet, "MedicPHP/recetas.php", url.Values{"id_historial": {"9001"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["recetas"])
}

func TestAppointmentActionUnsupported(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodPost, "AdminPHP/citaAction.php", nil, map[string]any{"id_cita": 1202, "action": "archive"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Acción no soportada: archive", body["message"])

	status, body = call(t, router, http.MethodPost, "MedicPHP/citaAction.php", nil, map[string]any{"id_cita": 1202, "action": "confirm"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Confirmada", body["cita"].(map[string]any)["estado"])
}

func TestPatientsForPhysician(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "MedicPHP/getPacientes.php", url.Values{"id_medico": {"2"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, []float64{3, 4}, ids(t, body["pacientes"], "id_paciente"))
}

func TestBookingFlow(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "UserPHP/getHorarios.php", url.Values{"id_medico": {"2"}, "fecha": {"2025-07-10"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"09:00"}, body["ocupados"])

	status, body = call(t, router, http.MethodPost, "UserPHP/createCita.php", nil, map[string]any{
		"id_paciente": 3,
		"id_medico":   2,
		"fecha":       "2025-07-10",
		"hora":        "10:00",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Reservada", body["cita"].(map[string]any)["estado"])

	status, _ = call(t, router, http.MethodPost, "UserPHP/createCita.php", nil, map[string]any{
		"id_paciente": 4,
		"id_medico":   2,
		"fecha":       "2025-07-10",
		"hora":        "10:00",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestBlogReaderFlow(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "UserPHP/blog.php", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["posts"], 1)

	status, body = call(t, router, http.MethodPost, "UserPHP/blogLike.php", nil, map[string]any{"slug": "cuidado-del-corazon"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(8), body["likes"])

	status, _ = call(t, router, http.MethodGet, "UserPHP/blog.php", url.Values{"slug": {"alimentacion-saludable"}}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestChatEndpoints(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "chat/conversaciones.php", url.Values{"id_usuario": {"3"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []float64{1202}, ids(t, body["conversaciones"], "id_cita"))

	status, body = call(t, router, http.MethodPost, "chat/mensajes.php", nil, map[string]any{"id_cita": 1201, "id_remitente": 3, "texto": "Gracias"})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(3), body["mensaje"].(map[string]any)["id"])

	status, body = call(t, router, http.MethodGet, "chat/stream.php", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["mensajes"])
	assert.NotEmpty(t, body["cursor"])
}

func TestUnroutedResource(t *testing.T) {
	router := newTestRouter(t)

	status, body := call(t, router, http.MethodGet, "AdminPHP/noExiste.php", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, envelope{"success": false, "message": "mock no implementado: AdminPHP/noExiste.php"}, body)
}
