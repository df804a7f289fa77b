package usecase

import (
	"context"

	"telemock/internal/domain/entity"
)

// CreateUserInput is the admin form for new accounts of any role.
type CreateUserInput struct {
	Username   string `mapstructure:"username" validate:"required"`
	Password   string `mapstructure:"password" validate:"required"`
	Role       string `mapstructure:"rol" validate:"omitempty,oneof=Administrador Medico Paciente"`
	FirstName  string `mapstructure:"nombre" validate:"required"`
	LastName   string `mapstructure:"apellido"`
	Email      string `mapstructure:"email" validate:"omitempty,email"`
	Phone      string `mapstructure:"telefono"`
	NationalID string `mapstructure:"cedula"`
	Avatar     string `mapstructure:"avatar"`
	Specialty  string `mapstructure:"especialidad"`
}

// UserPatch is an admin merge-patch: nil fields are left unchanged.
type UserPatch struct {
	ID         int     `mapstructure:"id_usuario" validate:"required"`
	Username   *string `mapstructure:"username" validate:"omitempty,min=1"`
	Password   *string `mapstructure:"password" validate:"omitempty,min=1"`
	Role       *string `mapstructure:"rol" validate:"omitempty,oneof=Administrador Medico Paciente"`
	FirstName  *string `mapstructure:"nombre"`
	LastName   *string `mapstructure:"apellido"`
	Email      *string `mapstructure:"email" validate:"omitempty,email"`
	Phone      *string `mapstructure:"telefono"`
	NationalID *string `mapstructure:"cedula"`
	State      *string `mapstructure:"estado" validate:"omitempty,oneof=Activo Inactivo"`
	Avatar     *string `mapstructure:"avatar"`
	Specialty  *string `mapstructure:"especialidad"`
}

// AccountPatch is the self-service subset of UserPatch.
type AccountPatch struct {
	ID        int     `mapstructure:"id_usuario" validate:"required"`
	Password  *string `mapstructure:"password" validate:"omitempty,min=1"`
	FirstName *string `mapstructure:"nombre"`
	LastName  *string `mapstructure:"apellido"`
	Email     *string `mapstructure:"email" validate:"omitempty,email"`
	Phone     *string `mapstructure:"telefono"`
	Avatar    *string `mapstructure:"avatar"`
}

// AccountUsecase manages user accounts. Every returned user is sanitized.
type AccountUsecase interface {
	ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error)
	GetUser(ctx context.Context, id int) (*entity.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, patch UserPatch) (*entity.User, error)
	ToggleState(ctx context.Context, id int) (*entity.User, error)
	UpdateAccount(ctx context.Context, patch AccountPatch) (*entity.User, error)
}
