package dto

// TokenRequest body para POST /api/auth/token.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate valida los campos obligatorios.
func (r *TokenRequest) Validate() error {
	return validate.Struct(r)
}

// TokenResponse token JWT emitido.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
