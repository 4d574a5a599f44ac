package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// AuthConfig credenciales estáticas y parámetros de emisión de tokens.
type AuthConfig struct {
	User       string
	Password   string
	JWTSecret  string
	Issuer     string
	ExpMinutes int
}

// AuthHandler emite tokens de API contra credenciales configuradas.
type AuthHandler struct {
	cfg AuthConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(cfg AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Token godoc
// @Summary      Emitir token de API
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "Credenciales"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	userOK := subtle.ConstantTimeCompare([]byte(in.User), []byte(h.cfg.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(h.cfg.Password)) == 1
	if h.cfg.User == "" || !userOK || !passOK {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	}
	token, err := jwt.Generate(h.cfg.JWTSecret, in.User, h.cfg.Issuer, h.cfg.ExpMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TokenResponse{Token: token, ExpiresIn: h.cfg.ExpMinutes * 60})
}
