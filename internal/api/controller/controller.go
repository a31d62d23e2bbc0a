package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/service/auth"
	"github.com/ougirez/rtrw/internal/service/business"
	"github.com/ougirez/rtrw/internal/service/dashboard"
	"github.com/ougirez/rtrw/internal/service/finance"
	"github.com/ougirez/rtrw/internal/service/importer"
	"github.com/ougirez/rtrw/internal/service/letter"
	"github.com/ougirez/rtrw/internal/service/migration"
	"github.com/ougirez/rtrw/internal/service/report"
	"github.com/ougirez/rtrw/internal/service/resident"
)

type Services struct {
	Auth       *auth.Service
	Businesses *business.Service
	Reports    *report.Service
	Migration  *migration.Service
	Finance    *finance.Service
	Letters    *letter.Service
	Residents  *resident.Service
	Dashboard  *dashboard.Service
	Importer   *importer.Service
}

type Controller struct {
	Services
	secureCookie bool
}

func NewController(services Services, secureCookie bool) *Controller {
	return &Controller{Services: services, secureCookie: secureCookie}
}

// identity is set by the auth middleware on every protected route.
func identity(ctx echo.Context) (domain.Identity, error) {
	id, ok := ctx.Get(constants.CtxKeyIdentity).(domain.Identity)
	if !ok {
		return domain.Identity{}, constants.ErrUnauthorized
	}
	return id, nil
}
