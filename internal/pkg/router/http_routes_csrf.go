package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/app/controllers"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/env"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Catalog
	group.Get("/", loggedInMiddleware, controllers.HandleStart)
	group.Get("/videos", loggedInMiddleware, controllers.HandleVideos)

	// Auth pages
	group.Get("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Post("/login", loggedInMiddleware, controllers.HandleAuthLogin)
	group.Get("/register", loggedInMiddleware, controllers.HandleAuthRegister)
	group.Post("/register", loggedInMiddleware, controllers.HandleAuthRegister)

	// Plans and payment flow
	group.Get("/planos", loggedInMiddleware, controllers.HandlePlanos)
	group.Get("/pagamento", middleware.RequireAuth, controllers.HandlePagamento)
	group.Post("/pagamento/metodo", middleware.RequireAuth, controllers.HandlePagamentoMetodo)
	group.Post("/pagamento/submit", middleware.RequireAuth, controllers.HandlePagamentoSubmit)
	group.Get("/pagamento/confirmacao", middleware.RequireAuth, controllers.HandlePagamentoConfirmacao)
	group.Post("/pagamento/cancelar", middleware.RequireAuth, controllers.HandlePagamentoCancelar)

	// Profile
	group.Get("/perfil", middleware.RequireAuth, controllers.HandleUserProfile)
	group.Post("/perfil", middleware.RequireAuth, controllers.HandleUserProfileUpdate)
	group.Post("/perfil/excluir", middleware.RequireAuth, controllers.HandleUserDelete)
}
