package dto

// LoginRequest credenciales del formulario de login (también acepta JSON).
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SessionUserResponse identidad guardada en la sesión.
type SessionUserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse respuesta JSON para clientes programáticos.
type LoginResponse struct {
	Success bool                `json:"success"`
	User    SessionUserResponse `json:"user"`
}
