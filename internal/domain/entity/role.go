// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	RoleAdministrator Role = "Administrador"
	RolePhysician     Role = "Medico"
	RolePatient       Role = "Paciente"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles(), r)
}

// AllRoles lists every role in display order.
func AllRoles() []Role {
	return []Role{RoleAdministrator, RolePhysician, RolePatient}
}

// UserState is the account state toggled by administrators.
type UserState string

const (
	UserStateActive   UserState = "Activo"
	UserStateInactive UserState = "Inactivo"
)

// IsValid checks if the UserState is a valid value.
func (s UserState) IsValid() bool {
	return s == UserStateActive || s == UserStateInactive
}

// Toggle flips between Activo and Inactivo.
func (s UserState) Toggle() UserState {
	if s == UserStateActive {
		return UserStateInactive
	}

	return UserStateActive
}
