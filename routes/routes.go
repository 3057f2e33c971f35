package routes

import (
	"app/config"
	"app/handlers"
	"app/middleware"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application. Role gates follow
// the permission matrix of the dashboard: operadores manage citas only,
// gerentes add statistics and the services catalog plus user management,
// superadmins control staff, currency, webhooks and themes.
func SetupRoutes(app *fiber.App, cache *config.Cache, hook *webhook.Client) {
	api := app.Group("/api/v1")

	// --- Authentication ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)
	auth.Post("/initialize", handlers.HandleInitializeAdmin)
	auth.Put("/password", middleware.Authenticate, handlers.HandleChangeOwnPassword)

	// --- Statistics & insights ---
	api.Get("/stats", middleware.Authenticate, middleware.CheckRole("gerente", "superadmin"), handlers.HandleGetStats(hook))
	api.Post("/insights", middleware.Authenticate, middleware.CheckRole("gerente", "superadmin"), handlers.HandleGenerateInsights(hook))

	// --- Appointments (proxied to the n8n flows) ---
	citas := api.Group("/citas", middleware.Authenticate)
	citas.Get("/search", handlers.HandleSearchCitas(hook))
	citas.Post("/", handlers.HandleCreateCita(cache, hook))
	citas.Put("/:id", handlers.HandleUpdateCita(hook))
	citas.Delete("/:id", handlers.HandleDeleteCita(hook))

	// --- Salon settings ---
	settings := api.Group("/settings", middleware.Authenticate)
	settings.Get("/", handlers.HandleGetSettings(cache))
	settings.Post("/refresh", middleware.CheckRole("gerente", "superadmin"), handlers.HandleRefreshSettings(cache))
	settings.Put("/servicios", middleware.CheckRole("gerente", "superadmin"), handlers.HandleUpdateServicios(cache))
	settings.Put("/negocio", middleware.CheckRole("gerente", "superadmin"), handlers.HandleUpdateNegocio(cache))
	settings.Put("/staff", middleware.CheckRole("superadmin"), handlers.HandleUpdateStaff(cache))
	settings.Put("/moneda", middleware.CheckRole("superadmin"), handlers.HandleUpdateMoneda(cache))
	settings.Put("/webhooks", middleware.CheckRole("superadmin"), handlers.HandleUpdateWebhooks(cache))

	// --- Themes ---
	themes := api.Group("/themes", middleware.Authenticate)
	themes.Get("/", handlers.HandleListThemes(cache))
	themes.Put("/active", middleware.CheckRole("superadmin"), handlers.HandleSetActiveTheme(cache))

	// --- User management ---
	usuarios := api.Group("/usuarios", middleware.Authenticate, middleware.CheckRole("gerente", "superadmin"))
	usuarios.Get("/", handlers.HandleListUsuarios)
	usuarios.Post("/", handlers.HandleCreateUsuario)
	usuarios.Put("/:userId", handlers.HandleUpdateUsuario)
	usuarios.Delete("/:userId", handlers.HandleDeleteUsuario)
}
