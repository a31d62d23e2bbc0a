package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetDashboard(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	summary, err := c.Dashboard.Summary(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}
