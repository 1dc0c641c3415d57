package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/catalog"
)

// HandleStart renders the home page: hero with the featured video and the
// category-filtered grid below it.
func HandleStart(c *fiber.Ctx) error {
	category := c.Query("categoria", catalog.CategoryAll)

	videos := catalog.Query(catalog.All(), "", category, "")

	return render(c, "index", "home", fiber.Map{
		"Featured":         catalog.Featured(),
		"Videos":           videoCards(videos),
		"Categories":       catalog.Categories(),
		"SelectedCategory": category,
	})
}

// HandleNotFound renders the catch-all 404 page.
func HandleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
		"Page": "404",
	}, "layouts/main")
}
