// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher abstracts how account passwords are stored and verified.
type PasswordHasher interface {
	// Hash turns a plaintext password into its stored form.
	Hash(password string) (string, error)

	// Check compares a plaintext password with its stored form.
	Check(password, stored string) bool
}
