package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
)

func (c *Controller) GetMigrationStatus(ctx echo.Context) error {
	pending, err := c.Migration.Pending(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.MigrationStatus{
		Pending:   pending,
		Available: c.Migration.Available(ctx.Request().Context()),
	})
}

func (c *Controller) RunMigration(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	result, err := c.Migration.Migrate(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) Health(ctx echo.Context) error {
	status := "offline"
	if c.Migration.Available(ctx.Request().Context()) {
		status = "online"
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": status})
}
