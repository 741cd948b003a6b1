package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
// Es el contrato que consume el dashboard; aplica a 400/401/403/404/500.
type ErrorResponse struct {
	Error string `json:"error"`
}
