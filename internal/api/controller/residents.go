package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
)

func (c *Controller) ListResidents(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	query := dto.ListQuery{}
	if err = ctx.Bind(&query); err != nil {
		return err
	}

	residents, err := c.Residents.List(ctx.Request().Context(), id, query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, residents)
}

func (c *Controller) GetResident(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	r, err := c.Residents.Get(ctx.Request().Context(), id, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, r)
}

func (c *Controller) CreateResident(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	request := new(dto.ResidentRequest)
	if err = ctx.Bind(request); err != nil {
		return err
	}

	r, err := c.Residents.Create(ctx.Request().Context(), id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, r)
}

func (c *Controller) DeleteResident(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	if err = c.Residents.Delete(ctx.Request().Context(), id, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
