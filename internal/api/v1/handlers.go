package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/app/controllers"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/catalog"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/middleware"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/usercontext"
)

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// RegisterHandlers attaches the v1 endpoints to the given router group.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/videos", s.GetVideos)
	r.Get("/planos", s.GetPlanos)
	r.Get("/pagamento/:id/status", middleware.RequireAPISessionAuth, s.GetCheckoutStatus)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetVideos runs the catalog query with the same parameters the page uses
// and returns the filtered, ordered records.
func (s *APIServer) GetVideos(c *fiber.Ctx) error {
	term := c.Query("busca", "")
	category := c.Query("categoria", catalog.CategoryAll)
	sortKey := c.Query("ordenar", catalog.SortRecent)

	videos := catalog.Query(catalog.All(), term, category, sortKey)

	return c.JSON(VideoList{Videos: videos, Total: len(videos)})
}

// GetPlanos returns the fixed subscription tiers.
func (s *APIServer) GetPlanos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"planos": plans.All()})
}

// GetCheckoutStatus reports the settlement state of a checkout session so the
// processing page can poll until it succeeds. Only the owning user may read it.
func (s *APIServer) GetCheckoutStatus(c *fiber.Ctx) error {
	sess, ok := controllers.GetCheckoutManager().Get(c.Params("id"))
	if !ok || sess.UserID != usercontext.GetUserID(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "not_found",
			"message": "checkout session not found",
		})
	}

	return c.JSON(CheckoutStatus{State: string(sess.State())})
}
