package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taxhelper-api/internal/application/dto"
	"github.com/jhoicas/taxhelper-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID         = "user_id"
	LocalBusinessNumber = "business_number"
	LocalRole           = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID (Kakao), BusinessNumber y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "Authorization header requerido"))
		}
		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_TOKEN", "token vacío"))
		}
		userID, businessNumber, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("INVALID_TOKEN", "token inválido o expirado"))
		}
		setClaims(c, userID, businessNumber, role)
		return c.Next()
	}
}

// OptionalAuth carga los claims si la petición trae un token válido; si no, sigue como anónima.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString, ok := bearerToken(c.Get("Authorization")); ok && tokenString != "" {
			if userID, businessNumber, role, err := jwt.Parse(jwtSecret, tokenString); err == nil && userID != "" {
				setClaims(c, userID, businessNumber, role)
			}
		}
		return c.Next()
	}
}

// RequireRole exige que el rol del token esté entre los permitidos. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("MISSING_ROLE", "el token no incluye rol"))
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", "rol sin permiso para este recurso"))
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setClaims(c *fiber.Ctx, userID, businessNumber, role string) {
	c.Locals(LocalUserID, userID)
	c.Locals(LocalBusinessNumber, businessNumber)
	c.Locals(LocalRole, role)
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetBusinessNumber devuelve el número de registro del token, si lo tiene.
func GetBusinessNumber(c *fiber.Ctx) string { return localString(c, LocalBusinessNumber) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
