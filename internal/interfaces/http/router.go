package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucatax/luca-api/internal/application/auth"
	"github.com/lucatax/luca-api/internal/application/onboarding"
	"github.com/lucatax/luca-api/internal/application/usecase"
	"github.com/lucatax/luca-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OnboardingUC *onboarding.OnboardingUseCase
	CompanyUC    *usecase.CompanyUseCase
	DashboardUC  *usecase.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Onboarding (protegido): sesiones del asistente de vinculación
	ob := protected.Group("/onboarding/sessions")
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	ob.Post("/", onboardingHandler.StartSession)
	ob.Get("/:id", onboardingHandler.GetSession)
	ob.Post("/:id/companies", onboardingHandler.AddCompany)
	ob.Patch("/:id/companies/:entryId", onboardingHandler.UpdateField)
	ob.Delete("/:id/companies/:entryId", onboardingHandler.DeleteCompany)
	ob.Post("/:id/companies/:entryId/expand", onboardingHandler.ToggleExpand)
	ob.Put("/:id/draft", onboardingHandler.SaveDraft)
	ob.Delete("/:id/draft", onboardingHandler.ClearDraft)
	ob.Post("/:id/tour/start", onboardingHandler.StartTour)
	ob.Post("/:id/tour/advance", onboardingHandler.AdvanceTour)
	ob.Post("/:id/tour/skip", onboardingHandler.SkipTour)
	ob.Post("/:id/tour/close", onboardingHandler.CloseTour)
	ob.Post("/:id/complete", onboardingHandler.Complete)

	// Empresas del portafolio (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	// Desvincular empresas queda restringido a admin y contador.
	companies.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleContador), companyHandler.Delete)

	// Dashboard de cumplimiento (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/deadlines", dashboardHandler.Deadlines)
}
