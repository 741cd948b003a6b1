package auth

import (
	"github.com/jhoicas/warehouse-picking-api/internal/domain"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// Credential usuario demo tal como llega de la configuración (password en claro).
type Credential struct {
	Username string
	Password string
	Role     string
}

// AuthUseCase login contra la tabla estática de credenciales. Los passwords
// se hashean con bcrypt al construir el caso de uso; en claro solo viven en
// la config, nunca en memoria de largo plazo ni en logs.
type AuthUseCase struct {
	users map[string]*entity.User
}

// NewAuthUseCase construye la tabla de usuarios hasheando cada credencial.
func NewAuthUseCase(creds []Credential) (*AuthUseCase, error) {
	users := make(map[string]*entity.User, len(creds))
	for _, c := range creds {
		if c.Username == "" || c.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		role := c.Role
		if role == "" {
			role = entity.RoleUser
		}
		users[c.Username] = &entity.User{
			Username:     c.Username,
			PasswordHash: string(hash),
			Role:         role,
		}
	}
	return &AuthUseCase{users: users}, nil
}

// Login verifica username/password. Devuelve siempre domain.ErrUnauthorized
// tanto para usuario inexistente como para password incorrecto: el mensaje
// al cliente nunca revela qué campo falló.
func (uc *AuthUseCase) Login(username, password string) (*entity.User, error) {
	u, ok := uc.users[username]
	if !ok {
		// Comparación dummy para igualar el costo de la rama de usuario válido.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0cN8Mo7dC3P1kGJxhG1kGJxhG1k"), []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}
