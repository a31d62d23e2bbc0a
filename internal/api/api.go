package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/rtrw/internal/api/controller"
	"github.com/ougirez/rtrw/internal/pkg/logger"
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

type Config struct {
	AllowOrigins []string
	SecureCookie bool
}

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

type APIService struct {
	router      *echo.Echo
	authService *auth.Service
}

func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(services Services, cfg Config) (*APIService, error) {
	svc := &APIService{router: echo.New(), authService: services.Auth}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.ERROR)
	svc.router.JSONSerializer = JSONSerializer{}
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	svc.router.Use(requestIDMiddleware)
	svc.router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			)
			return nil
		},
	}))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(controller.Services{
		Auth:       services.Auth,
		Businesses: services.Businesses,
		Reports:    services.Reports,
		Migration:  services.Migration,
		Finance:    services.Finance,
		Letters:    services.Letters,
		Residents:  services.Residents,
		Dashboard:  services.Dashboard,
		Importer:   services.Importer,
	}, cfg.SecureCookie)

	svc.router.GET("/health", cntrl.Health)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.SignupUser)
	authGroup.POST("/login", cntrl.LoginUser)
	authGroup.DELETE("/logout", cntrl.LogoutUser)
	authGroup.GET("/me", cntrl.GetMe, svc.AuthMiddleware)

	umkm := api.Group("/umkm", svc.AuthMiddleware)
	umkm.GET("", cntrl.ListBusinesses)
	umkm.GET("/csv", cntrl.ExportBusinessesCSV)
	umkm.POST("/import", cntrl.ImportBusinesses, svc.AdminMiddleware)
	umkm.GET("/:id", cntrl.GetBusiness)
	umkm.POST("", cntrl.CreateBusiness)
	umkm.PUT("/:id", cntrl.UpdateBusiness)
	umkm.DELETE("/:id", cntrl.DeleteBusiness)

	reports := api.Group("/reports", svc.AuthMiddleware)
	reports.GET("/statistics", cntrl.GetStatistics)
	reports.GET("/export", cntrl.ExportReport)

	migrations := api.Group("/migration", svc.AuthMiddleware)
	migrations.GET("/pending", cntrl.GetMigrationStatus)
	migrations.POST("/run", cntrl.RunMigration)

	financeGroup := api.Group("/finance", svc.AuthMiddleware)
	financeGroup.GET("", cntrl.ListFinance)
	financeGroup.GET("/summary", cntrl.GetFinanceSummary)
	financeGroup.POST("", cntrl.CreateFinance, svc.AdminMiddleware)
	financeGroup.DELETE("/:id", cntrl.DeleteFinance, svc.AdminMiddleware)

	letters := api.Group("/letters", svc.AuthMiddleware)
	letters.GET("", cntrl.ListLetters)
	letters.GET("/:id", cntrl.GetLetter)
	letters.GET("/:id/download", cntrl.DownloadLetter)
	letters.POST("", cntrl.CreateLetter, svc.AdminMiddleware)

	residents := api.Group("/residents", svc.AuthMiddleware)
	residents.GET("", cntrl.ListResidents)
	residents.GET("/:id", cntrl.GetResident)
	residents.POST("", cntrl.CreateResident, svc.AdminMiddleware)
	residents.DELETE("/:id", cntrl.DeleteResident, svc.AdminMiddleware)

	api.GET("/dashboard", cntrl.GetDashboard, svc.AuthMiddleware)

	return svc, nil
}
