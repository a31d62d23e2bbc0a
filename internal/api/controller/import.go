package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
)

// ImportBusinesses loads an HTML UMKM table into the local cache, either
// posted as the request body or fetched from a URL.
func (c *Controller) ImportBusinesses(ctx echo.Context) error {
	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMETextHTML) {
		records, err := c.Importer.ImportReader(ctx.Request().Context(), ctx.Request().Body)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, records)
	}

	request := new(dto.ImportRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}

	records, err := c.Importer.Import(ctx.Request().Context(), request.URL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}
