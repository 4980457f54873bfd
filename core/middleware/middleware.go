package middleware

import (
	"event-admin-api/core/cache"
	"event-admin-api/core/constants"
	"event-admin-api/core/controller"
	"event-admin-api/core/errors"
	"event-admin-api/core/logger"
	"event-admin-api/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware guards private routes. The decision is a pure function of the
// presented token: bearer extraction, blacklist check, signature validation.
// Nothing is cached between requests.
type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware rejects unauthenticated requests before any handler or
// repository work happens, and places the token claims into the echo context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				if ae, ok := err.(*errors.AppError); ok {
					return controller.NewErrorResponse(401, ae.Code, ae.Message)
				}
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "unauthorized")
			}

			blacklisted, errCheck := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if errCheck != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", errCheck)
				return controller.NewErrorResponse(500, errors.ErrInternalServer, "failed to check token")
			}
			if blacklisted {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "token is blacklisted")
			}

			claims, errParse := utils.ValidateAndParseToken(token)
			if errParse != nil {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "invalid or expired token")
			}

			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "invalid token scope")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}
