package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
)

func (c *Controller) ListFinance(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	query := dto.ListQuery{}
	if err = ctx.Bind(&query); err != nil {
		return err
	}

	entries, err := c.Finance.List(ctx.Request().Context(), id, query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, entries)
}

func (c *Controller) GetFinanceSummary(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	summary, err := c.Finance.Summary(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (c *Controller) CreateFinance(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	request := new(dto.FinanceRequest)
	if err = ctx.Bind(request); err != nil {
		return err
	}

	entry, err := c.Finance.Create(ctx.Request().Context(), id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, entry)
}

func (c *Controller) DeleteFinance(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	if err = c.Finance.Delete(ctx.Request().Context(), id, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
