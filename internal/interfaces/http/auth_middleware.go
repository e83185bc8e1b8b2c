package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/auth"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/jwt"
)

// Locals keys que el middleware de auth deja en el contexto de Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
	LocalJTI      = "jti"
	LocalExpiry   = "session_expiry"
)

// SessionCookie nombre de la cookie de sesión que emite el login.
const SessionCookie = "taller_session"

// AuthMiddleware valida la sesión JWT (Bearer Token o cookie) y extrae la
// identidad a c.Locals. Las sesiones cerradas con logout se rechazan mientras
// su jti siga en la lista negra.
func AuthMiddleware(jwtSecret string, sessions auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "sesión requerida", Code: "MISSING_TOKEN"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "sesión inválida o expirada", Code: "INVALID_TOKEN"})
		}
		if sessions != nil {
			revoked, err := sessions.IsRevoked(c.UserContext(), claims.ID)
			if err == nil && revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "sesión cerrada", Code: "REVOKED_TOKEN"})
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalExpiry, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// extractToken busca el token primero en el header Authorization y después en
// la cookie de sesión.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies(SessionCookie)
}

// GetUserID devuelve el id del usuario autenticado (después del middleware).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUsername devuelve el username de la sesión.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetJTI devuelve el identificador único del token de la sesión.
func GetJTI(c *fiber.Ctx) string {
	v := c.Locals(LocalJTI)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionExpiry devuelve la expiración del token de la sesión.
func GetSessionExpiry(c *fiber.Ctx) time.Time {
	v := c.Locals(LocalExpiry)
	if v == nil {
		return time.Time{}
	}
	t, _ := v.(time.Time)
	return t
}
