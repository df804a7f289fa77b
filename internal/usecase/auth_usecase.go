// Package usecase contains the application-specific business rules of the
// mock backend. Delivery code depends on these contracts; impl provides them.
package usecase

import (
	"context"

	"telemock/internal/domain/entity"
)

// LoginInput carries the credentials typed in the login form.
type LoginInput struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// RegisterInput is the self-registration form. Role is always Paciente.
type RegisterInput struct {
	Username   string `mapstructure:"username" validate:"required"`
	Password   string `mapstructure:"password" validate:"required"`
	FirstName  string `mapstructure:"nombre" validate:"required"`
	LastName   string `mapstructure:"apellido"`
	Email      string `mapstructure:"email" validate:"omitempty,email"`
	Phone      string `mapstructure:"telefono"`
	NationalID string `mapstructure:"cedula"`
}

// AuthUsecase authenticates and registers accounts.
type AuthUsecase interface {
	// Login returns the sanitized profile. Unknown users, wrong passwords and
	// inactive accounts all fail with the same invalid-credentials error.
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
}
