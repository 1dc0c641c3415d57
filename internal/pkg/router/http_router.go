package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/app/controllers"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/middleware"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/oauth"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize checkout controller with the session manager
	controllers.InitializeCheckoutController()

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// UserContextMiddleware already set all user context; all user
	// information is available via usercontext.GetUserContext(c)
	return c.Next()
}
