package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
)

// HandlePlanos renders the three subscription tiers. Choosing one starts the
// payment flow with the plan passed as query parameters.
func HandlePlanos(c *fiber.Ctx) error {
	return render(c, "planos", "planos", fiber.Map{
		"Plans": plans.All(),
	})
}
