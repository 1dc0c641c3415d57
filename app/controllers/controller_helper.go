package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/usercontext"
)

const (
	AUTH_KEY       string = usercontext.AuthKey
	USER_ID        string = usercontext.KeyUserID
	USER_NAME      string = usercontext.KeyUsername
	USER_EMAIL     string = "user_email"
	USER_AVATAR    string = "user_avatar"
	FROM_PROTECTED string = usercontext.KeyFromProtected
)

func isLoggedIn(c *fiber.Ctx) bool {
	return usercontext.IsLoggedIn(c)
}

// render wraps c.Render with the shared layout data every page needs.
func render(c *fiber.Ctx, template string, page string, data fiber.Map) error {
	userCtx := usercontext.GetUserContext(c)

	if data == nil {
		data = fiber.Map{}
	}
	data["Page"] = page
	data["FromProtected"] = userCtx.IsLoggedIn
	data["Username"] = userCtx.Username
	data["Msg"] = flash.Get(c)

	return c.Render(template, data, "layouts/main")
}
