package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/taxhelper-api/internal/application/business"
	"github.com/jhoicas/taxhelper-api/internal/application/taxation"
	"github.com/jhoicas/taxhelper-api/pkg/jwt"
	"github.com/jhoicas/taxhelper-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Tax           *taxation.Service
	Reports       taxation.ReportGenerator
	Filings       taxation.FilingBuilder
	Business      *business.UseCase
	RegistryCache CacheInvalidator
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Calculadoras (público; el token opcional completa businessInfo desde el perfil)
	calc := api.Group("/calc", OptionalAuth(deps.JWTSecret))
	var profiles profileSource
	if deps.Business != nil {
		profiles = deps.Business
	}
	calcHandler := NewCalcHandler(deps.Tax, deps.Reports, deps.Filings, profiles, deps.Log)
	calc.Post("/vat", calcHandler.VAT)
	calc.Post("/vat/xml", calcHandler.VATXML)
	calc.Post("/income", calcHandler.Income)
	calc.Post("/income/pdf", calcHandler.IncomePDF)
	calc.Post("/labor", calcHandler.Labor)
	calc.Post("/tax", calcHandler.Tax)
	calc.Post("/refund", calcHandler.Refund)
	calc.Post("/corporate", calcHandler.Corporate)
	calc.Post("/sole", calcHandler.Sole)

	api.Get("/tax/schedule/:taxType", calcHandler.Schedule)

	if deps.Business == nil {
		return
	}

	// Registro del NTS (público)
	businessHandler := NewBusinessHandler(deps.Business, deps.Log)
	biz := api.Group("/business")
	biz.Post("/validate", businessHandler.Validate)
	biz.Post("/status", businessHandler.Status)

	// Perfil (requiere Bearer Token)
	profile := biz.Group("/profile", AuthMiddleware(deps.JWTSecret))
	profile.Get("/", businessHandler.GetProfile)
	profile.Put("/", businessHandler.UpdateProfile)
	profile.Delete("/", businessHandler.DeleteProfile)

	// Mantenimiento (admin)
	if deps.RegistryCache != nil {
		admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
		adminHandler := NewAdminHandler(deps.RegistryCache, deps.Log)
		admin.Delete("/registry-cache/:businessNumber", adminHandler.InvalidateRegistryCache)
	}
}
