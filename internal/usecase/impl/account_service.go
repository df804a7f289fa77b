package impl

import (
	"context"
	"log/slog"

	"telemock/internal/domain/entity"
	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/domain/service"
	"telemock/internal/infra/persistence/memory"
	"telemock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type accountService struct {
	store  *memory.Store
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewAccountService creates the account management service.
func NewAccountService(store *memory.Store, hasher service.PasswordHasher, logger *slog.Logger) usecase.AccountUsecase {
	return &accountService{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

func (s *accountService) ListUsers(_ context.Context, role entity.Role) ([]*entity.User, error) {
	users := s.store.Users.All()
	if role != "" {
		users = lo.Filter(users, func(u *entity.User, _ int) bool { return u.Role == role })
	}

	return lo.Map(users, func(u *entity.User, _ int) *entity.User { return u.Sanitized() }), nil
}

func (s *accountService) GetUser(_ context.Context, id int) (*entity.User, error) {
	user, ok := s.store.Users.Find(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	return user.Sanitized(), nil
}

func (s *accountService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
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

	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RolePatient
	}

	user := &entity.User{
		ID:         s.store.Users.NextID(0),
		Username:   username,
		Password:   password,
		Role:       role,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		NationalID: input.NationalID,
		State:      entity.UserStateActive,
		Avatar:     input.Avatar,
		Specialty:  input.Specialty,
	}
	s.store.Users.Insert(user)

	loggerFrom(ctx, s.logger).Info("user created", slog.Int("user_id", user.ID), slog.String("role", role.String()))

	return user.Sanitized(), nil
}

// UpdateUser merges every present field into the stored user.
func (s *accountService) UpdateUser(_ context.Context, patch usecase.UserPatch) (*entity.User, error) {
	user, ok := s.store.Users.Find(patch.ID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	var username *string
	if patch.Username != nil {
		trimmed, err := normalizeUsername(*patch.Username)
		if err != nil {
			return nil, err
		}
		if other, taken := findByUsername(s.store, trimmed); taken && other.ID != user.ID {
			return nil, errors.WithStack(domainerrors.ErrUsernameTaken)
		}
		username = &trimmed
	}

	if err := s.setPassword(user, patch.Password); err != nil {
		return nil, err
	}

	set(&user.Username, username)
	if patch.Role != nil {
		user.Role = entity.Role(*patch.Role)
	}
	set(&user.FirstName, patch.FirstName)
	set(&user.LastName, patch.LastName)
	set(&user.Email, patch.Email)
	set(&user.Phone, patch.Phone)
	set(&user.NationalID, patch.NationalID)
	if patch.State != nil {
		user.State = entity.UserState(*patch.State)
	}
	set(&user.Avatar, patch.Avatar)
	set(&user.Specialty, patch.Specialty)

	return user.Sanitized(), nil
}

func (s *accountService) ToggleState(ctx context.Context, id int) (*entity.User, error) {
	user, ok := s.store.Users.Find(id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	user.State = user.State.Toggle()
	loggerFrom(ctx, s.logger).Info("user state toggled", slog.Int("user_id", id), slog.String("state", string(user.State)))

	return user.Sanitized(), nil
}

// UpdateAccount is the self-service merge-patch; role, state and username stay put.
func (s *accountService) UpdateAccount(_ context.Context, patch usecase.AccountPatch) (*entity.User, error) {
	user, ok := s.store.Users.Find(patch.ID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}

	if err := s.setPassword(user, patch.Password); err != nil {
		return nil, err
	}

	set(&user.FirstName, patch.FirstName)
	set(&user.LastName, patch.LastName)
	set(&user.Email, patch.Email)
	set(&user.Phone, patch.Phone)
	set(&user.Avatar, patch.Avatar)

	return user.Sanitized(), nil
}

func (s *accountService) setPassword(user *entity.User, password *string) error {
	if password == nil {
		return nil
	}

	hashed, err := s.hasher.Hash(*password)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	user.Password = hashed

	return nil
}
