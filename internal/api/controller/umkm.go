package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/service/business"
)

func (c *Controller) ListBusinesses(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	query := dto.BusinessQuery{}
	if err = ctx.Bind(&query); err != nil {
		return err
	}

	records, err := c.Businesses.List(ctx.Request().Context(), id, query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, records)
}

func (c *Controller) ExportBusinessesCSV(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	query := dto.BusinessQuery{}
	if err = ctx.Bind(&query); err != nil {
		return err
	}

	data, err := c.Businesses.ExportCSV(ctx.Request().Context(), id, query)
	if err != nil {
		return err
	}

	return attachment(ctx, business.CSVFilename(time.Now()), "text/csv; charset=utf-8", data)
}

func (c *Controller) GetBusiness(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	record, err := c.Businesses.Get(ctx.Request().Context(), id, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, record)
}

func (c *Controller) CreateBusiness(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	request := new(dto.BusinessRequest)
	if err = ctx.Bind(request); err != nil {
		return err
	}

	record, err := c.Businesses.Create(ctx.Request().Context(), id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, record)
}

func (c *Controller) UpdateBusiness(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	request := new(dto.BusinessRequest)
	if err = ctx.Bind(request); err != nil {
		return err
	}

	record, err := c.Businesses.Update(ctx.Request().Context(), id, ctx.Param("id"), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, record)
}

func (c *Controller) DeleteBusiness(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	if err = c.Businesses.Delete(ctx.Request().Context(), id, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func attachment(ctx echo.Context, filename, contentType string, data []byte) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK, contentType, data)
}
