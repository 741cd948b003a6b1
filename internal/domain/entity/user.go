package entity

// Roles de los usuarios demo de bodega.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User usuario de la tabla estática de credenciales (config, no DB).
// PasswordHash es bcrypt; el password en claro solo vive en la config.
type User struct {
	Username     string
	PasswordHash string
	Role         string
}

// IsAdmin indica si el usuario puede mutar cantidades directamente.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
