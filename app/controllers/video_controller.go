package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/catalog"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/viewmodel"
)

// HandleVideos renders the catalog page. Search, category and sort are plain
// query parameters; the whole result set is recomputed on every request.
func HandleVideos(c *fiber.Ctx) error {
	term := c.Query("busca", "")
	category := c.Query("categoria", catalog.CategoryAll)
	sortKey := c.Query("ordenar", catalog.SortRecent)

	videos := catalog.Query(catalog.All(), term, category, sortKey)

	return render(c, "videos", "videos", fiber.Map{
		"Videos":           videoCards(videos),
		"Categories":       catalog.Categories(),
		"SearchTerm":       term,
		"SelectedCategory": category,
		"SortBy":           sortKey,
		"ResultCount":      len(videos),
	})
}

// videoCards maps catalog records to their card view model.
func videoCards(videos []catalog.Video) []viewmodel.VideoCard {
	cards := make([]viewmodel.VideoCard, len(videos))
	for i, v := range videos {
		cards[i] = viewmodel.VideoCard{
			ID:         v.ID,
			Title:      v.Title,
			Thumbnail:  v.Thumbnail,
			Category:   v.Category,
			Duration:   v.Duration,
			Views:      v.Views,
			UploadDate: v.UploadDate,
			IsNew:      v.IsNew,
			Tags:       v.Tags,
		}
	}
	return cards
}
