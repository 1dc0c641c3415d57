package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/app/models"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/authmsg"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/database"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/session"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if isLoggedIn(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if c.Method() == fiber.MethodPost {
		var user models.User
		fm := fiber.Map{
			"type": "error",
		}

		result := database.GetDB().Where("email = ?", c.FormValue("email")).First(&user)
		if result.Error != nil {
			fm["message"] = authmsg.Message(authmsg.CodeUserNotFound)

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = authmsg.Message(authmsg.CodeWrongPassword)

			return flash.WithError(c, fm).Redirect("/login")
		}

		if err := createUserSession(c, &user); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		database.GetDB().Model(&user).Update("last_login_at", time.Now())

		fm = fiber.Map{
			"type":    "success",
			"message": "Login realizado com sucesso!",
		}

		return flash.WithSuccess(c, fm).Redirect("/")
	}

	return render(c, "login", "login", fiber.Map{
		"CsrfToken": c.Locals("csrf"),
	})
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if isLoggedIn(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if c.Method() == fiber.MethodPost {
		email := c.FormValue("email")

		var existing models.User
		if err := database.GetDB().Where("email = ?", email).First(&existing).Error; err == nil {
			fm := fiber.Map{
				"type":    "error",
				"message": authmsg.Message(authmsg.CodeEmailInUse),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		if len(c.FormValue("password")) < 6 {
			fm := fiber.Map{
				"type":    "error",
				"message": authmsg.Message(authmsg.CodeWeakPassword),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		user, err := models.CreateUser(c.FormValue("username"), email, c.FormValue("password"))
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := database.GetDB().Create(&user).Error; err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Conta criada com sucesso! Faça login para continuar.",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return render(c, "register", "register", fiber.Map{
		"CsrfToken": c.Locals("csrf"),
	})
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	if err := sess.Destroy(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Até logo!",
	}

	c.Locals(FROM_PROTECTED, false)

	return flash.WithSuccess(c, fm).Redirect("/login")
}

// createUserSession stores the authenticated user in the web session. Every
// later request observes this snapshot via the user context middleware until
// the session changes again.
func createUserSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}

	sess.Set(AUTH_KEY, true)
	sess.Set(USER_ID, user.ID)
	sess.Set(USER_NAME, user.Name)
	sess.Set(USER_EMAIL, user.Email)
	sess.Set(USER_AVATAR, user.AvatarURL)

	return sess.Save()
}
