// Package middleware holds the HTTP middleware shared across route groups.
package middleware

import (
	"github.com/anshgandhiii/InvestmentHub/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected returns middleware requiring a valid bearer token signed
// with the configured secret.
func JwtProtected(cfg config.JwtConfig) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "missing or invalid token"})
		},
	})
}
