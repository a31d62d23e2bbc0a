package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetStatistics(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	stats, err := c.Reports.Statistics(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (c *Controller) ExportReport(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	doc, err := c.Reports.Export(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return attachment(ctx, doc.Filename, "text/plain; charset=utf-8", []byte(doc.Content))
}
