package impl

import (
	"context"
	"log/slog"
	"strings"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/domain/service"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type authService struct {
	store  *memory.Store
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewAuthService creates the login/registration service.
func NewAuthService(store *memory.Store, hasher service.PasswordHasher, logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// Login looks the user up by case-insensitive username.
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	user, found := findByUsername(s.store, input.Username)
	if !found || !s.hasher.Check(input.Password, user.Password) || user.State != entity.UserStateActive {
		loggerFrom(ctx, s.logger).Debug("login rejected", slog.String("username", input.Username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return user.Sanitized(), nil
}

// Register creates a patient account with the next sequential id.
func (s *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if _, taken := findByUsername(s.store, username); taken {
		return nil, errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	password, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entity.User{
		ID:         s.store.Users.NextID(0),
		Username:   username,
		Password:   password,
		Role:       entity.RolePatient,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		NationalID: input.NationalID,
		State:      entity.UserStateActive,
	}
	s.store.Users.Insert(user)

	loggerFrom(ctx, s.logger).Info("patient registered", slog.Int("user_id", user.ID))

	return user.Sanitized(), nil
}

// normalizeUsername trims raw and rejects names left empty.
func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username"))
	}

	return username, nil
}

func findByUsername(store *memory.Store, username string) (*entity.User, bool) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false
	}

	return lo.Find(store.Users.All(), func(u *entity.User) bool {
		return strings.EqualFold(u.Username, username)
	})
}
