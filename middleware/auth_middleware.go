package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 72 * time.Hour

var errNoSecret = errors.New("jwt secret is not configured")

func Protected(secret string) fiber.Handler {
	return protect(secret, jwtware.Config{})
}

// ProtectedSocket also reads the token from ?token=, since browsers cannot set
// headers on a websocket handshake.
func ProtectedSocket(secret string) fiber.Handler {
	return protect(secret, jwtware.Config{
		TokenLookup: "header:Authorization,query:token",
		AuthScheme:  "Bearer",
	})
}

func protect(secret string, cfg jwtware.Config) fiber.Handler {
	if secret == "" {
		return func(c *fiber.Ctx) error {
			return jwtError(c, errNoSecret)
		}
	}
	cfg.SigningKey = []byte(secret)
	cfg.ErrorHandler = jwtError
	return jwtware.New(cfg)
}

// OwnParent lets the request through only when the token belongs to the parent
// named by the route parameter.
func OwnParent(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParentID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
		}
		if c.Params(param) != strconv.FormatUint(uint64(id), 10) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"status": "error", "message": "Access denied"})
		}
		return c.Next()
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), "Missing or malformed JWT") {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
}

// IssueToken signs the parent session token handed out at login.
func IssueToken(secret string, parentID uint, children []uint) (string, error) {
	if secret == "" {
		return "", errNoSecret
	}
	claims := jwt.MapClaims{
		"parent_id": parentID,
		"children":  children,
		"exp":       time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParentID reads the authenticated parent from a request that passed Protected.
func ParentID(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, errors.New("missing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("unexpected claims")
	}
	id, ok := claims["parent_id"].(float64)
	if !ok || id <= 0 {
		return 0, errors.New("token has no parent")
	}
	return uint(id), nil
}
