package errors

import (
	"fmt"
	"net/http"

	"telemock/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, rendered into the envelope
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches on the business error code so copies made by WithDetails and
// WithMessagef still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessagef returns a copy with a formatted user-facing message
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Predefined error types
var (
	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales inválidas",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"El nombre de usuario ya existe",
		"",
	)

	// Not found
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		"",
	)

	ErrPatientNotFound = NewBaseError(
		http.StatusNotFound,
		"PATIENT_NOT_FOUND",
		"Paciente no encontrado",
		"",
	)

	ErrPhysicianNotFound = NewBaseError(
		http.StatusNotFound,
		"PHYSICIAN_NOT_FOUND",
		"Médico no encontrado",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrCartLineNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_LINE_NOT_FOUND",
		"El producto no está en el carrito",
		"",
	)

	ErrAppointmentNotFound = NewBaseError(
		http.StatusNotFound,
		"APPOINTMENT_NOT_FOUND",
		"Cita no encontrada",
		"",
	)

	ErrHistoryNotFound = NewBaseError(
		http.StatusNotFound,
		"HISTORY_NOT_FOUND",
		"Historial no encontrado",
		"",
	)

	ErrPrescriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"PRESCRIPTION_NOT_FOUND",
		"Receta no encontrada",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido no encontrado",
		"",
	)

	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Publicación no encontrada",
		"",
	)

	ErrSpecialtyNotFound = NewBaseError(
		http.StatusNotFound,
		"SPECIALTY_NOT_FOUND",
		"Especialidad no encontrada",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos inválidos",
		"",
	)

	ErrUnsupportedAction = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_ACTION",
		"Acción no soportada",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"Transición de estado no permitida",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"El carrito está vacío",
		"",
	)

	ErrNotParticipant = NewBaseError(
		http.StatusBadRequest,
		"NOT_PARTICIPANT",
		"El usuario no participa en esta conversación",
		"",
	)

	// Conflicts
	ErrSlotTaken = NewBaseError(
		http.StatusConflict,
		"SLOT_TAKEN",
		"El horario ya está ocupado",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Stock insuficiente",
		"",
	)

	// Routing and internal
	ErrNotImplemented = NewBaseError(
		http.StatusNotFound,
		"MOCK_NOT_IMPLEMENTED",
		"mock no implementado",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"error interno del mock",
		"",
	)
)
