package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/constants"
)

func (c *Controller) SignupUser(ctx echo.Context) error {
	request := new(dto.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	response, err := c.Auth.SignupUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	c.setAuthCookie(ctx, response.AuthToken, c.Auth.TokenTTL())
	return ctx.JSON(http.StatusCreated, response)
}

func (c *Controller) LoginUser(ctx echo.Context) error {
	request := new(dto.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	response, err := c.Auth.LoginUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	c.setAuthCookie(ctx, response.AuthToken, c.Auth.TokenTTL())
	return ctx.JSON(http.StatusOK, response)
}

func (c *Controller) LogoutUser(ctx echo.Context) error {
	c.setAuthCookie(ctx, "", -time.Second)
	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) GetMe(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, id)
}

func (c *Controller) setAuthCookie(ctx echo.Context, value string, ttl time.Duration) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
