package dto

// TokenRequest credenciales para obtener un token de API.
type TokenRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse token JWT emitido.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
