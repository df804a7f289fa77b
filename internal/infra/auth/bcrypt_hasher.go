// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"

	"telemock/config"
	"telemock/internal/domain/service"
	"telemock/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// NewPasswordHasher picks bcrypt when mock.hashPasswords is set, plaintext otherwise.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Mock != nil && cfg.Mock.HashPasswords {
		return NewBcryptHasher(bcrypt.DefaultCost)
	}

	return NewPlaintextHasher()
}

// bcryptHasher stores passwords as bcrypt hashes.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// plaintextHasher keeps passwords as entered, which is what the front-end's
// development backend does.
type plaintextHasher struct{}

// NewPlaintextHasher is the constructor for plaintextHasher.
func NewPlaintextHasher() service.PasswordHasher {
	return plaintextHasher{}
}

func (plaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plaintextHasher) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
