// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account of any role. Password is kept server side only.
type User struct {
	ID         int       `json:"id"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Role       Role      `json:"rol"`
	FirstName  string    `json:"nombre"`
	LastName   string    `json:"apellido"`
	Email      string    `json:"email"`
	Phone      string    `json:"telefono"`
	NationalID string    `json:"cedula"`
	State      UserState `json:"estado"`
	Avatar     string    `json:"avatar,omitempty"`
	Specialty  string    `json:"especialidad,omitempty"`
}

func (u *User) GetID() int { return u.ID }

func (u *User) Clone() *User {
	c := *u

	return &c
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Sanitized returns a copy safe to hand to callers.
func (u *User) Sanitized() *User {
	c := u.Clone()
	c.Password = ""

	return c
}
