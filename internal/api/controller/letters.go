package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain/dto"
)

func (c *Controller) ListLetters(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	query := dto.ListQuery{}
	if err = ctx.Bind(&query); err != nil {
		return err
	}

	letters, err := c.Letters.List(ctx.Request().Context(), id, query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, letters)
}

func (c *Controller) GetLetter(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	l, err := c.Letters.Get(ctx.Request().Context(), id, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, l)
}

func (c *Controller) DownloadLetter(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	doc, err := c.Letters.Download(ctx.Request().Context(), id, ctx.Param("id"))
	if err != nil {
		return err
	}

	return attachment(ctx, doc.Filename, "text/plain; charset=utf-8", []byte(doc.Content))
}

func (c *Controller) CreateLetter(ctx echo.Context) error {
	id, err := identity(ctx)
	if err != nil {
		return err
	}

	request := new(dto.LetterRequest)
	if err = ctx.Bind(request); err != nil {
		return err
	}

	l, err := c.Letters.Create(ctx.Request().Context(), id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, l)
}
