package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
)

// AuthMiddleware resolves the caller from the auth cookie or a bearer token
// and stores the identity in the echo context.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := bearerToken(ctx)
		if raw == "" {
			cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
			if err != nil || cookie.Value == "" {
				return constants.ErrMissingAuthCookie
			}
			raw = cookie.Value
		}

		identity, err := svc.authService.Identify(raw)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyIdentity, identity)
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.With(req.Context(), "user_id", identity.ID, "rw", identity.Region)))

		return next(ctx)
	}
}

// AdminMiddleware must run after AuthMiddleware.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		identity, ok := ctx.Get(constants.CtxKeyIdentity).(domain.Identity)
		if !ok {
			return constants.ErrUnauthorized
		}
		if !identity.IsAdmin() {
			return constants.ErrForbidden
		}
		return next(ctx)
	}
}

func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Response().Header().Get(echo.HeaderXRequestID)
		ctx.Set(constants.CtxKeyRequestID, id)
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.With(req.Context(), "request_id", id)))
		return next(ctx)
	}
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
