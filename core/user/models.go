package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/pkm-kampus/portal/core"
)

// Roles
const (
	RoleAdmin    = "admin"
	RoleLecturer = "dosen"
	RoleStudent  = "mahasiswa"
)

var AllRoles = []string{RoleAdmin, RoleLecturer, RoleStudent}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // plaintext or hash, depending on the CredentialVerifier
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsLecturer() bool {
	return u.Role == RoleLecturer
}

func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

// HasRole reports whether the user holds one of roles.
func (u User) HasRole(roles ...string) bool {
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// Public strips the stored password, e.g. before the user is kept in a session.
func (u User) Public() User {
	u.Password = ""
	return u
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank"`
	Role     string `json:"role" validate:"required,oneof=admin dosen mahasiswa"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Username = core.CleanString(nu.Username)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	return validate.Struct(nu)
}
